package system_healthcheck

import (
	"fmt"
	"log/slog"
	"time"

	"threatmap/internal/storage"
	cache_utils "threatmap/internal/util/cache"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct {
	logger *slog.Logger
}

func (s *HealthcheckService) GetHealth() *HealthcheckResponseDTO {
	response := &HealthcheckResponseDTO{
		Status:     StatusOk,
		ServerTime: time.Now().UTC(),
		Database:   ComponentUp,
		Cache:      ComponentUp,
		Host:       s.hostStats(),
	}

	if err := s.checkDatabase(); err != nil {
		s.logger.Error("healthcheck: database unreachable", "error", err)
		response.Database = ComponentDown
		response.Status = StatusDegraded
	}

	if err := s.checkCache(); err != nil {
		s.logger.Error("healthcheck: cache unreachable", "error", err)
		response.Cache = ComponentDown
		response.Status = StatusDegraded
	}

	return response
}

func (s *HealthcheckService) checkDatabase() error {
	if err := storage.GetDb().Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}

	return nil
}

func (s *HealthcheckService) checkCache() (err error) {
	// TestCacheConnection panics on failure, keep that contained here
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache connection test panicked: %v", r)
		}
	}()

	cache_utils.TestCacheConnection()
	return nil
}

func (s *HealthcheckService) hostStats() HostStatsDTO {
	stats := HostStatsDTO{}

	if usage, err := disk.Usage("/"); err == nil {
		stats.DiskUsedPercent = usage.UsedPercent
	}

	if memory, err := mem.VirtualMemory(); err == nil {
		stats.MemoryUsedPercent = memory.UsedPercent
	}

	return stats
}
