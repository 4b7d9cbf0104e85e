package log_entries

import (
	"errors"
	"net/http"
	"strconv"

	"threatmap/internal/config"
	"threatmap/internal/features/records"
	"threatmap/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

type LogEntryController struct {
	logEntryService *LogEntryService
	rateLimiter     *rate_limit.RateLimiter
}

const (
	ingestRpsLimit   = 50
	ingestBurstLimit = 200
)

func (c *LogEntryController) RegisterRoutes(router *gin.RouterGroup) {
	logRoutes := router.Group("/logs")

	logRoutes.POST("", c.CreateLogEntry)
	logRoutes.GET("", c.GetLogEntries)
}

// CreateLogEntry
// @Summary Create a log entry
// @Description Insert a single log entry. The event timestamp defaults to the server time when omitted.
// @Tags logs
// @Accept json
// @Produce json
// @Param request body CreateLogEntryRequestDTO true "Log entry data"
// @Success 200 {object} LogEntry
// @Failure 400 {object} map[string]string "Invalid request format or severity"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /logs [post]
func (c *LogEntryController) CreateLogEntry(ctx *gin.Context) {
	if !c.checkRateLimit(ctx) {
		return
	}

	var request CreateLogEntryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := c.logEntryService.CreateLogEntry(&request)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// GetLogEntries
// @Summary List log entries
// @Description List log entries ordered by event timestamp descending. All supplied filters are combined as a conjunction.
// @Tags logs
// @Produce json
// @Param severity query string false "Severity filter (info/warning/error/debug/critical)"
// @Param since query string false "Inclusive lower bound on the event timestamp (ISO or unix)"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} GetLogEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /logs [get]
func (c *LogEntryController) GetLogEntries(ctx *gin.Context) {
	var request GetLogEntriesRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.logEntryService.GetLogEntries(&request)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *LogEntryController) checkRateLimit(ctx *gin.Context) bool {
	if config.GetEnv().IsTesting {
		return true
	}

	result, err := c.rateLimiter.CheckRateLimit(ctx.ClientIP(), ingestRpsLimit, ingestBurstLimit)
	if err != nil {
		// Fail open: ingestion should not depend on cache availability
		return true
	}

	if !result.Allowed {
		ctx.Header("Retry-After", strconv.Itoa(result.RetryAfterSec))
		ctx.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"code":  records.ErrorRateLimitExceeded,
		})
		ctx.Abort()
		return false
	}

	return true
}

func (c *LogEntryController) handleError(ctx *gin.Context, err error) {
	var validationErr *records.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
			"field": validationErr.Field,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
