package demo_data

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"threatmap/internal/features/log_entries"
	"threatmap/internal/features/network_activities"
	"threatmap/internal/features/records"
)

const (
	DefaultLogEntryCount = 50
	DefaultActivityCount = 100
	maxGenerateCount     = 1000
)

type DemoDataService struct {
	logEntryRepository *log_entries.LogEntryRepository
	activityRepository *network_activities.NetworkActivityRepository
	logger             *slog.Logger

	// rand.Rand is not safe for concurrent use
	rngMu sync.Mutex
	rng   *rand.Rand
}

// GenerateLogEntries fabricates and persists a batch of log entries so
// later listings include them, and returns the batch sorted by event
// timestamp descending.
func (s *DemoDataService) GenerateLogEntries(count int) (*GenerateLogEntriesResponseDTO, error) {
	count, err := s.normalizeCount(count, DefaultLogEntryCount)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	entries := generateLogEntries(s.rng, count, time.Now().UTC())
	s.rngMu.Unlock()

	if err := s.logEntryRepository.CreateBatch(entries); err != nil {
		s.logger.Error("failed to persist generated log entries", "error", err)
		return nil, err
	}

	return &GenerateLogEntriesResponseDTO{
		LogEntries: entries,
		Count:      len(entries),
	}, nil
}

// GenerateNetworkActivities fabricates and persists a batch of map points.
func (s *DemoDataService) GenerateNetworkActivities(count int) (*GenerateNetworkActivitiesResponseDTO, error) {
	count, err := s.normalizeCount(count, DefaultActivityCount)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	activities := generateNetworkActivities(s.rng, count, time.Now().UTC())
	s.rngMu.Unlock()

	if err := s.activityRepository.CreateBatch(activities); err != nil {
		s.logger.Error("failed to persist generated network activities", "error", err)
		return nil, err
	}

	return &GenerateNetworkActivitiesResponseDTO{
		Activities: activities,
		Count:      len(activities),
	}, nil
}

// StreamLogEntry fabricates one entry stamped at call time. Stream entries
// are ephemeral and never persisted.
func (s *DemoDataService) StreamLogEntry() *log_entries.LogEntry {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return generateStreamLogEntry(s.rng, time.Now().UTC())
}

func (s *DemoDataService) normalizeCount(count, fallback int) (int, error) {
	if count <= 0 {
		return fallback, nil
	}

	if count > maxGenerateCount {
		return 0, &records.ValidationError{
			Code:    records.ErrorCountTooLarge,
			Message: "count must not exceed 1000",
			Field:   "count",
		}
	}

	return count, nil
}
