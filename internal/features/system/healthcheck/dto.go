package system_healthcheck

import "time"

type HealthcheckResponseDTO struct {
	Status     string       `json:"status"`
	ServerTime time.Time    `json:"serverTime"`
	Database   string       `json:"database"`
	Cache      string       `json:"cache"`
	Host       HostStatsDTO `json:"host"`
}

type HostStatsDTO struct {
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
}

const (
	StatusOk       = "ok"
	StatusDegraded = "degraded"

	ComponentUp   = "up"
	ComponentDown = "down"
)
