package demo_data

import (
	"errors"
	"net/http"

	"threatmap/internal/config"
	"threatmap/internal/features/records"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type DemoDataController struct {
	demoDataService *DemoDataService
	streamLimiter   *rate.Limiter
}

func (c *DemoDataController) RegisterRoutes(router *gin.RouterGroup) {
	demoRoutes := router.Group("/demo")

	demoRoutes.POST("/logs/generate", c.GenerateLogEntries)
	demoRoutes.POST("/activities/generate", c.GenerateNetworkActivities)
	demoRoutes.GET("/logs/stream", c.StreamLogEntry)
}

// GenerateLogEntries
// @Summary Generate demo log entries
// @Description Fabricate a batch of internally consistent log entries, persist them, and return them sorted by event timestamp descending.
// @Tags demo
// @Produce json
// @Param count query int false "Number of entries (default 50, max 1000)"
// @Success 200 {object} GenerateLogEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /demo/logs/generate [post]
func (c *DemoDataController) GenerateLogEntries(ctx *gin.Context) {
	var request GenerateRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.demoDataService.GenerateLogEntries(request.Count)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GenerateNetworkActivities
// @Summary Generate demo network activities
// @Description Fabricate a batch of geolocated map points around fixed hotspots, persist them, and return them sorted by event timestamp descending.
// @Tags demo
// @Produce json
// @Param count query int false "Number of activities (default 100, max 1000)"
// @Success 200 {object} GenerateNetworkActivitiesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /demo/activities/generate [post]
func (c *DemoDataController) GenerateNetworkActivities(ctx *gin.Context) {
	var request GenerateRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.demoDataService.GenerateNetworkActivities(request.Count)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// StreamLogEntry
// @Summary Get one simulated live log entry
// @Description Return a single fabricated log entry stamped at call time. The dashboard polls this endpoint to simulate a real-time stream; entries are not persisted.
// @Tags demo
// @Produce json
// @Success 200 {object} log_entries.LogEntry
// @Failure 429 {object} map[string]string
// @Router /demo/logs/stream [get]
func (c *DemoDataController) StreamLogEntry(ctx *gin.Context) {
	if !config.GetEnv().IsTesting && !c.streamLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"code":  records.ErrorRateLimitExceeded,
		})
		return
	}

	ctx.JSON(http.StatusOK, c.demoDataService.StreamLogEntry())
}

func (c *DemoDataController) handleError(ctx *gin.Context, err error) {
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
