package records

// Severity is shared by log entries and network activities.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityDebug    Severity = "debug"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityDebug, SeverityCritical:
		return true
	default:
		return false
	}
}

func Severities() []Severity {
	return []Severity{
		SeverityInfo,
		SeverityWarning,
		SeverityError,
		SeverityDebug,
		SeverityCritical,
	}
}

type ActivityType string

const (
	ActivityTypeIntrusion  ActivityType = "intrusion"
	ActivityTypeFirewall   ActivityType = "firewall"
	ActivityTypeConnection ActivityType = "connection"
	ActivityTypeScan       ActivityType = "scan"
	ActivityTypeBreach     ActivityType = "breach"
	ActivityTypeTraffic    ActivityType = "traffic"
)

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeIntrusion, ActivityTypeFirewall, ActivityTypeConnection,
		ActivityTypeScan, ActivityTypeBreach, ActivityTypeTraffic:
		return true
	default:
		return false
	}
}

func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTypeIntrusion,
		ActivityTypeFirewall,
		ActivityTypeConnection,
		ActivityTypeScan,
		ActivityTypeBreach,
		ActivityTypeTraffic,
	}
}
