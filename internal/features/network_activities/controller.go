package network_activities

import (
	"errors"
	"net/http"
	"strconv"

	"threatmap/internal/config"
	"threatmap/internal/features/records"
	"threatmap/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

type NetworkActivityController struct {
	activityService *NetworkActivityService
	rateLimiter     *rate_limit.RateLimiter
}

const (
	ingestRpsLimit   = 50
	ingestBurstLimit = 200
)

func (c *NetworkActivityController) RegisterRoutes(router *gin.RouterGroup) {
	activityRoutes := router.Group("/activities")

	activityRoutes.POST("", c.CreateNetworkActivity)
	activityRoutes.GET("", c.GetNetworkActivities)
	activityRoutes.GET("/:id", c.GetNetworkActivityByID)
}

// CreateNetworkActivity
// @Summary Create a network activity
// @Description Insert a geolocated security-event record. Metadata is stored as an opaque key/value object.
// @Tags activities
// @Accept json
// @Produce json
// @Param request body CreateNetworkActivityRequestDTO true "Network activity data"
// @Success 200 {object} NetworkActivity
// @Failure 400 {object} map[string]string "Invalid request format, enum value, coordinates, or port"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /activities [post]
func (c *NetworkActivityController) CreateNetworkActivity(ctx *gin.Context) {
	if !c.checkRateLimit(ctx) {
		return
	}

	var request CreateNetworkActivityRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	activity, err := c.activityService.CreateNetworkActivity(&request)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// GetNetworkActivities
// @Summary List network activities
// @Description List network activities ordered by event timestamp descending. All supplied filters are combined as a conjunction.
// @Tags activities
// @Produce json
// @Param type query string false "Activity type filter (intrusion/firewall/connection/scan/breach/traffic)"
// @Param severity query string false "Severity filter (info/warning/error/debug/critical)"
// @Param since query string false "Inclusive lower bound on the event timestamp (ISO or unix)"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Success 200 {object} GetNetworkActivitiesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /activities [get]
func (c *NetworkActivityController) GetNetworkActivities(ctx *gin.Context) {
	var request GetNetworkActivitiesRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.activityService.GetNetworkActivities(&request)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetNetworkActivityByID
// @Summary Get a network activity by identifier
// @Description Returns the matching activity, or a JSON null body when no activity has the identifier. Not-found is never an error.
// @Tags activities
// @Produce json
// @Param id path int true "Activity identifier"
// @Success 200 {object} NetworkActivity "Activity, or null when not found"
// @Failure 400 {object} map[string]string "Identifier is not a number"
// @Router /activities/{id} [get]
func (c *NetworkActivityController) GetNetworkActivityByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	activity, err := c.activityService.GetNetworkActivityByID(id)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	// nil marshals to a JSON null body for the not-found case
	ctx.JSON(http.StatusOK, activity)
}

func (c *NetworkActivityController) checkRateLimit(ctx *gin.Context) bool {
	if config.GetEnv().IsTesting {
		return true
	}

	result, err := c.rateLimiter.CheckRateLimit(ctx.ClientIP(), ingestRpsLimit, ingestBurstLimit)
	if err != nil {
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

func (c *NetworkActivityController) handleError(ctx *gin.Context, err error) {
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
