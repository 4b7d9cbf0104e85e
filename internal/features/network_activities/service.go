package network_activities

import (
	"log/slog"
	"strconv"
	"time"

	"threatmap/internal/features/records"
	cache_utils "threatmap/internal/util/cache"
	time_parser "threatmap/internal/util/time"

	"golang.org/x/sync/singleflight"
)

type NetworkActivityService struct {
	activityRepository *NetworkActivityRepository
	activityCache      *cache_utils.CacheUtil[NetworkActivity]
	lookupGroup        *singleflight.Group
	logger             *slog.Logger
}

func (s *NetworkActivityService) CreateNetworkActivity(
	request *CreateNetworkActivityRequestDTO,
) (*NetworkActivity, error) {
	if !request.Type.IsValid() {
		return nil, &records.ValidationError{
			Code:    records.ErrorInvalidActivityType,
			Message: "type must be one of: intrusion, firewall, connection, scan, breach, traffic",
			Field:   "type",
		}
	}

	if !request.Severity.IsValid() {
		return nil, &records.ValidationError{
			Code:    records.ErrorInvalidSeverity,
			Message: "severity must be one of: info, warning, error, debug, critical",
			Field:   "severity",
		}
	}

	activity := &NetworkActivity{
		Lat:         *request.Lat,
		Lng:         *request.Lng,
		Type:        request.Type,
		Title:       request.Title,
		Description: request.Description,
		IP:          request.IP,
		Port:        request.Port,
		Country:     request.Country,
		City:        request.City,
		Severity:    request.Severity,
		Timestamp:   time_parser.ParseTimestamp(request.Timestamp),
		Metadata:    request.Metadata,
	}

	if err := s.activityRepository.Create(activity); err != nil {
		s.logger.Error("failed to create network activity", "error", err)
		return nil, err
	}

	return activity, nil
}

func (s *NetworkActivityService) GetNetworkActivities(
	request *GetNetworkActivitiesRequestDTO,
) (*GetNetworkActivitiesResponseDTO, error) {
	var activityType *records.ActivityType
	if request.Type != "" {
		parsed := records.ActivityType(request.Type)
		if !parsed.IsValid() {
			return nil, &records.ValidationError{
				Code:    records.ErrorInvalidActivityType,
				Message: "type must be one of: intrusion, firewall, connection, scan, breach, traffic",
				Field:   "type",
			}
		}
		activityType = &parsed
	}

	var severity *records.Severity
	if request.Severity != "" {
		parsed := records.Severity(request.Severity)
		if !parsed.IsValid() {
			return nil, &records.ValidationError{
				Code:    records.ErrorInvalidSeverity,
				Message: "severity must be one of: info, warning, error, debug, critical",
				Field:   "severity",
			}
		}
		severity = &parsed
	}

	var since *time.Time
	if request.Since != "" {
		parsed, err := time_parser.ParseQueryTime(request.Since)
		if err != nil {
			return nil, &records.ValidationError{
				Code:    records.ErrorInvalidTimestamp,
				Message: "since must be an ISO timestamp or unix seconds/milliseconds",
				Field:   "since",
			}
		}
		since = &parsed
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}

	activities, err := s.activityRepository.List(activityType, severity, since, limit)
	if err != nil {
		s.logger.Error("failed to list network activities", "error", err)
		return nil, err
	}

	return &GetNetworkActivitiesResponseDTO{
		Activities: activities,
		Limit:      limit,
	}, nil
}

// GetNetworkActivityByID returns (nil, nil) for unknown identifiers.
// Rows are immutable after creation, so positive lookups are cached;
// singleflight collapses concurrent misses for the same id into one query.
func (s *NetworkActivityService) GetNetworkActivityByID(id int64) (*NetworkActivity, error) {
	cacheKey := strconv.FormatInt(id, 10)

	if cached := s.activityCache.Get(cacheKey); cached != nil {
		return cached, nil
	}

	result, err, _ := s.lookupGroup.Do(cacheKey, func() (any, error) {
		activity, err := s.activityRepository.GetByID(id)
		if err != nil {
			return nil, err
		}

		if activity != nil {
			s.activityCache.Set(cacheKey, activity)
		}

		return activity, nil
	})

	if err != nil {
		s.logger.Error("failed to get network activity", "error", err, "id", id)
		return nil, err
	}

	activity, _ := result.(*NetworkActivity)
	return activity, nil
}
