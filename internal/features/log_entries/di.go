package log_entries

import (
	"threatmap/internal/util/logger"
	"threatmap/internal/util/rate_limit"
)

var logEntryRepository = &LogEntryRepository{}

var logEntryService = &LogEntryService{
	logEntryRepository: logEntryRepository,
	logger:             logger.GetLogger(),
}

var logEntryController = &LogEntryController{
	logEntryService: logEntryService,
	rateLimiter:     rate_limit.NewRateLimiter(),
}

func GetLogEntryRepository() *LogEntryRepository {
	return logEntryRepository
}

func GetLogEntryService() *LogEntryService {
	return logEntryService
}

func GetLogEntryController() *LogEntryController {
	return logEntryController
}
