package demo_data

import (
	"math/rand"
	"time"

	"threatmap/internal/features/log_entries"
	"threatmap/internal/features/network_activities"
	"threatmap/internal/util/logger"

	"golang.org/x/time/rate"
)

var demoDataService = &DemoDataService{
	logEntryRepository: log_entries.GetLogEntryRepository(),
	activityRepository: network_activities.GetNetworkActivityRepository(),
	logger:             logger.GetLogger(),
	rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
}

var demoDataController = &DemoDataController{
	demoDataService: demoDataService,
	// generous: the dashboard polls the stream every 2-5 seconds per tab
	streamLimiter: rate.NewLimiter(rate.Limit(20), 50),
}

func GetDemoDataService() *DemoDataService {
	return demoDataService
}

func GetDemoDataController() *DemoDataController {
	return demoDataController
}
