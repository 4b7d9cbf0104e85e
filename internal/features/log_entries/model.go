package log_entries

import (
	"time"

	"threatmap/internal/features/records"
)

type LogEntry struct {
	ID        int64            `json:"id"        gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time        `json:"timestamp" gorm:"column:timestamp"`
	Severity  records.Severity `json:"severity"  gorm:"column:severity"`
	Source    string           `json:"source"    gorm:"column:source"`
	Message   string           `json:"message"   gorm:"column:message"`
	IP        *string          `json:"ip"        gorm:"column:ip"`
	UserAgent *string          `json:"userAgent" gorm:"column:user_agent"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

func (LogEntry) TableName() string {
	return "log_entries"
}
