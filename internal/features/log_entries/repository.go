package log_entries

import (
	"time"

	"threatmap/internal/features/records"
	"threatmap/internal/storage"
)

type LogEntryRepository struct{}

func (r *LogEntryRepository) Create(entry *LogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(entry).Error
}

func (r *LogEntryRepository) CreateBatch(entries []*LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, entry := range entries {
		if entry.Timestamp.IsZero() {
			entry.Timestamp = now
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
	}

	return storage.GetDb().CreateInBatches(entries, 500).Error
}

func (r *LogEntryRepository) List(
	severity *records.Severity,
	since *time.Time,
	limit, offset int,
) ([]*LogEntry, error) {
	var entries = make([]*LogEntry, 0)

	query := storage.GetDb().Model(&LogEntry{})

	if severity != nil {
		query = query.Where("severity = ?", *severity)
	}

	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}

	// id tiebreak keeps limit/offset pages disjoint when timestamps collide
	err := query.
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, err
}
