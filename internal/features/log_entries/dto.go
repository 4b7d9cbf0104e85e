package log_entries

import (
	"threatmap/internal/features/records"
)

type CreateLogEntryRequestDTO struct {
	Severity  records.Severity `json:"severity"            binding:"required"`
	Source    string           `json:"source"              binding:"required,max=255"`
	Message   string           `json:"message"             binding:"required,max=10000"`
	IP        *string          `json:"ip,omitempty"        binding:"omitempty,max=45"`
	UserAgent *string          `json:"userAgent,omitempty" binding:"omitempty,max=512"`
	Timestamp any              `json:"timestamp,omitempty"`
}

type GetLogEntriesRequestDTO struct {
	Severity string `form:"severity" json:"severity"`
	Since    string `form:"since"    json:"since"`
	Limit    int    `form:"limit"    json:"limit"`
	Offset   int    `form:"offset"   json:"offset"`
}

type GetLogEntriesResponseDTO struct {
	LogEntries []*LogEntry `json:"logEntries"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}
