package network_activities

import (
	"threatmap/internal/features/records"
)

type CreateNetworkActivityRequestDTO struct {
	Lat         *float64             `json:"lat"                 binding:"required,gte=-90,lte=90"`
	Lng         *float64             `json:"lng"                 binding:"required,gte=-180,lte=180"`
	Type        records.ActivityType `json:"type"                binding:"required"`
	Title       string               `json:"title"               binding:"required,max=255"`
	Description string               `json:"description"         binding:"required,max=10000"`
	IP          string               `json:"ip"                  binding:"required,max=45"`
	Port        *int                 `json:"port,omitempty"      binding:"omitempty,gte=1,lte=65535"`
	Country     *string              `json:"country,omitempty"   binding:"omitempty,max=100"`
	City        *string              `json:"city,omitempty"      binding:"omitempty,max=100"`
	Severity    records.Severity     `json:"severity"            binding:"required"`
	Metadata    map[string]any       `json:"metadata,omitempty"`
	Timestamp   any                  `json:"timestamp,omitempty"`
}

type GetNetworkActivitiesRequestDTO struct {
	Type     string `form:"type"     json:"type"`
	Severity string `form:"severity" json:"severity"`
	Since    string `form:"since"    json:"since"`
	Limit    int    `form:"limit"    json:"limit"`
}

type GetNetworkActivitiesResponseDTO struct {
	Activities []*NetworkActivity `json:"activities"`
	Limit      int                `json:"limit"`
}
