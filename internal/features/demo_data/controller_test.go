package demo_data

import (
	"net/http"
	"testing"
	"time"

	"threatmap/internal/features/network_activities"
	test_utils "threatmap/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenerateLogEntries_DefaultCount_ReturnsFiftyEntries(t *testing.T) {
	router := test_utils.CreateTestRouter(GetDemoDataController())

	var response GenerateLogEntriesResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/demo/logs/generate", nil, http.StatusOK, &response)

	assert.Equal(t, DefaultLogEntryCount, response.Count)
	assert.Equal(t, DefaultLogEntryCount, len(response.LogEntries))
}

func Test_GenerateLogEntries_ExplicitCount_ReturnsThatManyPersistedEntries(t *testing.T) {
	router := test_utils.CreateTestRouter(GetDemoDataController())

	var response GenerateLogEntriesResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/demo/logs/generate?count=25", nil, http.StatusOK, &response)

	assert.Equal(t, 25, response.Count)
	assert.Equal(t, 25, len(response.LogEntries))

	for i, entry := range response.LogEntries {
		assert.NotZero(t, entry.ID, "generated entries must be persisted")
		assert.True(t, entry.Severity.IsValid())

		if i > 0 {
			assert.False(t, entry.Timestamp.After(response.LogEntries[i-1].Timestamp),
				"response must be sorted by timestamp descending")
		}
	}
}

func Test_GenerateLogEntries_CountAboveCap_ReturnsBadRequest(t *testing.T) {
	router := test_utils.CreateTestRouter(GetDemoDataController())

	test_utils.MakePostRequest(
		t, router, "/api/v1/demo/logs/generate?count=5000", nil, http.StatusBadRequest)
}

func Test_GenerateNetworkActivities_DefaultCount_ReturnsHundredActivities(t *testing.T) {
	router := test_utils.CreateTestRouter(GetDemoDataController())

	var response GenerateNetworkActivitiesResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/demo/activities/generate", nil, http.StatusOK, &response)

	assert.Equal(t, DefaultActivityCount, response.Count)
	assert.Equal(t, DefaultActivityCount, len(response.Activities))
}

func Test_GenerateNetworkActivities_PersistedAndRetrievableByID(t *testing.T) {
	service := GetDemoDataService()

	response, err := service.GenerateNetworkActivities(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(response.Activities))

	for _, activity := range response.Activities {
		assert.NotZero(t, activity.ID)

		fetched, err := network_activities.GetNetworkActivityService().
			GetNetworkActivityByID(activity.ID)
		assert.NoError(t, err)
		assert.NotNil(t, fetched, "generated activity %d must be persisted", activity.ID)
	}
}

func Test_StreamLogEntry_ReturnsFreshEntryWithoutPersisting(t *testing.T) {
	router := test_utils.CreateTestRouter(GetDemoDataController())

	before := time.Now().UTC().Add(-time.Second)

	var first map[string]any
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/demo/logs/stream", http.StatusOK, &first)

	assert.NotEmpty(t, first["message"])
	assert.NotEmpty(t, first["severity"])

	timestamp, err := time.Parse(time.RFC3339Nano, first["timestamp"].(string))
	assert.NoError(t, err)
	assert.True(t, timestamp.After(before), "stream entries must be stamped at call time")

	// stream entries are ephemeral: no identifier is ever assigned
	assert.Equal(t, float64(0), first["id"])
}
