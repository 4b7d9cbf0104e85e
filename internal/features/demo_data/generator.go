package demo_data

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"threatmap/internal/features/log_entries"
	"threatmap/internal/features/network_activities"
	"threatmap/internal/features/records"

	"github.com/google/uuid"
)

// coordinateJitter spreads generated points around their hotspot so the
// map does not stack every marker on one pixel.
const coordinateJitter = 2.5

func generateLogEntries(rng *rand.Rand, count int, now time.Time) []*log_entries.LogEntry {
	entries := make([]*log_entries.LogEntry, count)

	severities := records.Severities()

	for i := range entries {
		severity := severities[rng.Intn(len(severities))]
		messages := messagePool[severity]

		ip := randomIP(rng)
		userAgent := userAgentPool[rng.Intn(len(userAgentPool))]

		entries[i] = &log_entries.LogEntry{
			Timestamp: randomPastTimestamp(rng, now),
			Severity:  severity,
			Source:    sourcePool[rng.Intn(len(sourcePool))],
			Message:   messages[rng.Intn(len(messages))],
			IP:        &ip,
			UserAgent: &userAgent,
		}
	}

	sortLogEntriesByTimestampDesc(entries)

	return entries
}

func generateNetworkActivities(
	rng *rand.Rand,
	count int,
	now time.Time,
) []*network_activities.NetworkActivity {
	activities := make([]*network_activities.NetworkActivity, count)

	severities := records.Severities()
	activityTypes := records.ActivityTypes()

	for i := range activities {
		spot := hotspotPool[rng.Intn(len(hotspotPool))]
		activityType := activityTypes[rng.Intn(len(activityTypes))]
		titles := titlePool[activityType]
		title := titles[rng.Intn(len(titles))]

		port := 1 + rng.Intn(65535)
		country := spot.Country
		city := spot.City

		activities[i] = &network_activities.NetworkActivity{
			Lat:         clamp(spot.Lat+jitter(rng), -90, 90),
			Lng:         clamp(spot.Lng+jitter(rng), -180, 180),
			Type:        activityType,
			Title:       title,
			Description: fmt.Sprintf("%s from %s near %s, %s", title, randomIP(rng), city, country),
			IP:          randomIP(rng),
			Port:        &port,
			Country:     &country,
			City:        &city,
			Severity:    severities[rng.Intn(len(severities))],
			Timestamp:   randomPastTimestamp(rng, now),
			Metadata: map[string]any{
				"protocol":  protocolPool[rng.Intn(len(protocolPool))],
				"bytes":     rng.Intn(10_000_000),
				"sessionId": uuid.NewString(),
				"blocked":   rng.Intn(2) == 0,
			},
		}
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	return activities
}

// generateStreamLogEntry fabricates a single entry stamped at call time,
// for the dashboard's simulated live log panel.
func generateStreamLogEntry(rng *rand.Rand, now time.Time) *log_entries.LogEntry {
	severities := records.Severities()
	severity := severities[rng.Intn(len(severities))]
	messages := messagePool[severity]

	ip := randomIP(rng)
	userAgent := userAgentPool[rng.Intn(len(userAgentPool))]

	return &log_entries.LogEntry{
		Timestamp: now,
		Severity:  severity,
		Source:    sourcePool[rng.Intn(len(sourcePool))],
		Message:   messages[rng.Intn(len(messages))],
		IP:        &ip,
		UserAgent: &userAgent,
		CreatedAt: now,
	}
}

func sortLogEntriesByTimestampDesc(entries []*log_entries.LogEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

// randomPastTimestamp spreads event times over the trailing 24 hours.
func randomPastTimestamp(rng *rand.Rand, now time.Time) time.Time {
	offset := time.Duration(rng.Int63n(int64(24 * time.Hour)))
	return now.Add(-offset)
}

func randomIP(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+rng.Intn(223), rng.Intn(256), rng.Intn(256), 1+rng.Intn(254))
}

func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * coordinateJitter
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
