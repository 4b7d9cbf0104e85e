package network_activities

import (
	"errors"
	"time"

	"threatmap/internal/features/records"
	"threatmap/internal/storage"

	"gorm.io/gorm"
)

type NetworkActivityRepository struct{}

func (r *NetworkActivityRepository) Create(activity *NetworkActivity) error {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(activity).Error
}

func (r *NetworkActivityRepository) CreateBatch(activities []*NetworkActivity) error {
	if len(activities) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, activity := range activities {
		if activity.Timestamp.IsZero() {
			activity.Timestamp = now
		}
		if activity.CreatedAt.IsZero() {
			activity.CreatedAt = now
		}
	}

	return storage.GetDb().CreateInBatches(activities, 500).Error
}

func (r *NetworkActivityRepository) List(
	activityType *records.ActivityType,
	severity *records.Severity,
	since *time.Time,
	limit int,
) ([]*NetworkActivity, error) {
	var activities = make([]*NetworkActivity, 0)

	query := storage.GetDb().Model(&NetworkActivity{})

	if activityType != nil {
		query = query.Where("type = ?", *activityType)
	}

	if severity != nil {
		query = query.Where("severity = ?", *severity)
	}

	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}

	err := query.
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&activities).Error

	return activities, err
}

// GetByID returns (nil, nil) when no row matches: a missing activity is an
// expected outcome for the dashboard, not an error.
func (r *NetworkActivityRepository) GetByID(id int64) (*NetworkActivity, error) {
	var activity NetworkActivity

	err := storage.GetDb().
		Where("id = ?", id).
		First(&activity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &activity, nil
}
