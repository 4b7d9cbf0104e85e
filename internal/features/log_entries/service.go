package log_entries

import (
	"log/slog"
	"time"

	"threatmap/internal/features/records"
	time_parser "threatmap/internal/util/time"
)

type LogEntryService struct {
	logEntryRepository *LogEntryRepository
	logger             *slog.Logger
}

func (s *LogEntryService) CreateLogEntry(request *CreateLogEntryRequestDTO) (*LogEntry, error) {
	if !request.Severity.IsValid() {
		return nil, &records.ValidationError{
			Code:    records.ErrorInvalidSeverity,
			Message: "severity must be one of: info, warning, error, debug, critical",
			Field:   "severity",
		}
	}

	entry := &LogEntry{
		Timestamp: time_parser.ParseTimestamp(request.Timestamp),
		Severity:  request.Severity,
		Source:    request.Source,
		Message:   request.Message,
		IP:        request.IP,
		UserAgent: request.UserAgent,
	}

	if err := s.logEntryRepository.Create(entry); err != nil {
		s.logger.Error("failed to create log entry", "error", err)
		return nil, err
	}

	return entry, nil
}

func (s *LogEntryService) GetLogEntries(request *GetLogEntriesRequestDTO) (*GetLogEntriesResponseDTO, error) {
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

	offset := max(request.Offset, 0)

	entries, err := s.logEntryRepository.List(severity, since, limit, offset)
	if err != nil {
		s.logger.Error("failed to list log entries", "error", err)
		return nil, err
	}

	return &GetLogEntriesResponseDTO{
		LogEntries: entries,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
