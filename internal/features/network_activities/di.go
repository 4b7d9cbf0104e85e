package network_activities

import (
	"threatmap/internal/cache"
	cache_utils "threatmap/internal/util/cache"
	"threatmap/internal/util/logger"
	"threatmap/internal/util/rate_limit"

	"golang.org/x/sync/singleflight"
)

var activityRepository = &NetworkActivityRepository{}

var activityService = &NetworkActivityService{
	activityRepository: activityRepository,
	activityCache:      cache_utils.NewCacheUtil[NetworkActivity](cache.GetCache(), "tm_activity:"),
	lookupGroup:        &singleflight.Group{},
	logger:             logger.GetLogger(),
}

var activityController = &NetworkActivityController{
	activityService: activityService,
	rateLimiter:     rate_limit.NewRateLimiter(),
}

func GetNetworkActivityRepository() *NetworkActivityRepository {
	return activityRepository
}

func GetNetworkActivityService() *NetworkActivityService {
	return activityService
}

func GetNetworkActivityController() *NetworkActivityController {
	return activityController
}
