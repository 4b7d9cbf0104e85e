package network_activities

import (
	"time"

	"threatmap/internal/features/records"

	"gorm.io/datatypes"
)

type NetworkActivity struct {
	ID          int64                `json:"id"          gorm:"column:id;primaryKey;autoIncrement"`
	Lat         float64              `json:"lat"         gorm:"column:lat"`
	Lng         float64              `json:"lng"         gorm:"column:lng"`
	Type        records.ActivityType `json:"type"        gorm:"column:type"`
	Title       string               `json:"title"       gorm:"column:title"`
	Description string               `json:"description" gorm:"column:description"`
	IP          string               `json:"ip"          gorm:"column:ip"`
	Port        *int                 `json:"port"        gorm:"column:port"`
	Country     *string              `json:"country"     gorm:"column:country"`
	City        *string              `json:"city"        gorm:"column:city"`
	Severity    records.Severity     `json:"severity"    gorm:"column:severity"`
	Timestamp   time.Time            `json:"timestamp"   gorm:"column:timestamp"`
	Metadata    datatypes.JSONMap    `json:"metadata"    gorm:"column:metadata;type:jsonb"`
	CreatedAt   time.Time            `json:"createdAt"   gorm:"column:created_at"`
}

func (NetworkActivity) TableName() string {
	return "network_activities"
}
