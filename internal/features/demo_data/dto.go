package demo_data

import (
	"threatmap/internal/features/log_entries"
	"threatmap/internal/features/network_activities"
)

type GenerateRequestDTO struct {
	Count int `form:"count" json:"count"`
}

type GenerateLogEntriesResponseDTO struct {
	LogEntries []*log_entries.LogEntry `json:"logEntries"`
	Count      int                     `json:"count"`
}

type GenerateNetworkActivitiesResponseDTO struct {
	Activities []*network_activities.NetworkActivity `json:"activities"`
	Count      int                                   `json:"count"`
}
