package records

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	ErrorInvalidSeverity     = "INVALID_SEVERITY"
	ErrorInvalidActivityType = "INVALID_ACTIVITY_TYPE"
	ErrorInvalidCoordinates  = "INVALID_COORDINATES"
	ErrorInvalidPort         = "INVALID_PORT"
	ErrorInvalidTimestamp    = "INVALID_TIMESTAMP"
	ErrorCountTooLarge       = "COUNT_TOO_LARGE"
	ErrorRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
)
