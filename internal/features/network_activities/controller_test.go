package network_activities

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"threatmap/internal/features/records"
	test_utils "threatmap/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateNetworkActivity_WithFullFieldSet_ReturnsStoredActivity(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	lat, lng := 50.1109, 8.6821
	port := 443
	country, city := "Germany", "Frankfurt"
	request := CreateNetworkActivityRequestDTO{
		Lat:         &lat,
		Lng:         &lng,
		Type:        records.ActivityTypeIntrusion,
		Title:       "SSH brute force attempt",
		Description: "Repeated failed SSH logins from a single address",
		IP:          "203.0.113.7",
		Port:        &port,
		Country:     &country,
		City:        &city,
		Severity:    records.SeverityCritical,
		Metadata: map[string]any{
			"protocol": "SSH",
			"attempts": 412,
		},
	}

	var created NetworkActivity
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/activities", request, http.StatusOK, &created)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 50.1109, created.Lat)
	assert.Equal(t, 8.6821, created.Lng)
	assert.Equal(t, records.ActivityTypeIntrusion, created.Type)
	assert.Equal(t, "203.0.113.7", created.IP)
	assert.NotNil(t, created.Port)
	assert.Equal(t, 443, *created.Port)
	assert.Equal(t, "SSH", created.Metadata["protocol"])
	assert.Equal(t, float64(412), created.Metadata["attempts"])
}

func Test_CreateNetworkActivity_WithNullableFieldsUnset_RoundTripsNulls(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	created := createActivity(t, router, records.ActivityTypeTraffic, records.SeverityInfo,
		"nullable roundtrip "+uuid.NewString(), time.Now().UTC())

	assert.Nil(t, created.Port)
	assert.Nil(t, created.Country)
	assert.Nil(t, created.City)

	var fetched *NetworkActivity
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/activities/"+idString(created.ID), http.StatusOK, &fetched)

	assert.NotNil(t, fetched)
	assert.Nil(t, fetched.Port)
	assert.Nil(t, fetched.Country)
	assert.Nil(t, fetched.City)
}

func Test_CreateNetworkActivity_WithOutOfRangeLatitude_ReturnsBadRequest(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	lat, lng := 95.0, 8.0
	request := CreateNetworkActivityRequestDTO{
		Lat:         &lat,
		Lng:         &lng,
		Type:        records.ActivityTypeScan,
		Title:       "bad latitude",
		Description: "latitude outside range",
		IP:          "203.0.113.9",
		Severity:    records.SeverityInfo,
	}

	test_utils.MakePostRequest(t, router, "/api/v1/activities", request, http.StatusBadRequest)
}

func Test_CreateNetworkActivity_WithInvalidType_ReturnsBadRequest(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	lat, lng := 10.0, 10.0
	request := CreateNetworkActivityRequestDTO{
		Lat:         &lat,
		Lng:         &lng,
		Type:        "ddos",
		Title:       "bad type",
		Description: "unknown activity type",
		IP:          "203.0.113.9",
		Severity:    records.SeverityInfo,
	}

	test_utils.MakePostRequest(t, router, "/api/v1/activities", request, http.StatusBadRequest)
}

func Test_CreateNetworkActivity_WithOutOfRangePort_ReturnsBadRequest(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	lat, lng := 10.0, 10.0
	port := 70000
	request := CreateNetworkActivityRequestDTO{
		Lat:         &lat,
		Lng:         &lng,
		Type:        records.ActivityTypeScan,
		Title:       "bad port",
		Description: "port outside range",
		IP:          "203.0.113.9",
		Port:        &port,
		Severity:    records.SeverityInfo,
	}

	test_utils.MakePostRequest(t, router, "/api/v1/activities", request, http.StatusBadRequest)
}

func Test_GetNetworkActivities_FilterByTypeAndSeverity_ReturnsOnlyMatching(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())
	band := time.Now().UTC().Add(1 * time.Hour)

	matching := createActivity(t, router, records.ActivityTypeBreach, records.SeverityCritical,
		"type filter "+uuid.NewString(), band.Add(2*time.Second))
	createActivity(t, router, records.ActivityTypeBreach, records.SeverityInfo,
		"type filter "+uuid.NewString(), band.Add(time.Second))
	createActivity(t, router, records.ActivityTypeFirewall, records.SeverityCritical,
		"type filter "+uuid.NewString(), band)

	var response GetNetworkActivitiesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/activities?type=breach&severity=critical&limit=1000",
		http.StatusOK, &response)

	for _, activity := range response.Activities {
		assert.Equal(t, records.ActivityTypeBreach, activity.Type)
		assert.Equal(t, records.SeverityCritical, activity.Severity)
	}

	assert.NotNil(t, findByTitle(response.Activities, matching.Title))
}

func Test_GetNetworkActivities_SinceFilter_IsInclusive(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())
	bound := time.Now().UTC().Add(3 * time.Hour).Truncate(time.Second)

	before := createActivity(t, router, records.ActivityTypeScan, records.SeverityWarning,
		"since filter "+uuid.NewString(), bound.Add(-time.Minute))
	exact := createActivity(t, router, records.ActivityTypeScan, records.SeverityWarning,
		"since filter "+uuid.NewString(), bound)

	url := "/api/v1/activities?limit=1000&since=" + bound.Format(time.RFC3339)

	var response GetNetworkActivitiesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, url, http.StatusOK, &response)

	for _, activity := range response.Activities {
		assert.False(t, activity.Timestamp.Before(bound))
	}

	assert.NotNil(t, findByTitle(response.Activities, exact.Title), "bound must be inclusive")
	assert.Nil(t, findByTitle(response.Activities, before.Title))
}

func Test_GetNetworkActivities_OrderedByTimestampDescending(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	var response GetNetworkActivitiesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/activities?limit=1000", http.StatusOK, &response)

	for i := 1; i < len(response.Activities); i++ {
		assert.False(t,
			response.Activities[i].Timestamp.After(response.Activities[i-1].Timestamp),
			"activities must be ordered by timestamp descending")
	}
}

func Test_GetNetworkActivityByID_WithExistingID_ReturnsActivity(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	created := createActivity(t, router, records.ActivityTypeConnection, records.SeverityInfo,
		"lookup "+uuid.NewString(), time.Now().UTC())

	var fetched *NetworkActivity
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/activities/"+idString(created.ID), http.StatusOK, &fetched)

	assert.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)
}

func Test_GetNetworkActivityByID_WithUnknownID_ReturnsNull(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	recorder := test_utils.MakeGetRequest(
		t, router, "/api/v1/activities/999999999", http.StatusOK)

	assert.Equal(t, "null", recorder.Body.String())
}

func Test_GetNetworkActivityByID_WithMalformedID_ReturnsBadRequest(t *testing.T) {
	router := test_utils.CreateTestRouter(GetNetworkActivityController())

	test_utils.MakeGetRequest(t, router, "/api/v1/activities/not-a-number", http.StatusBadRequest)
}

func createActivity(
	t *testing.T,
	router *gin.Engine,
	activityType records.ActivityType,
	severity records.Severity,
	title string,
	timestamp time.Time,
) *NetworkActivity {
	t.Helper()

	lat, lng := 40.7128, -74.0060
	request := CreateNetworkActivityRequestDTO{
		Lat:         &lat,
		Lng:         &lng,
		Type:        activityType,
		Title:       title,
		Description: "created by test harness",
		IP:          "198.51.100.23",
		Severity:    severity,
		Timestamp:   timestamp.Format(time.RFC3339),
	}

	var created NetworkActivity
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/activities", request, http.StatusOK, &created)

	return &created
}

func findByTitle(activities []*NetworkActivity, title string) *NetworkActivity {
	for _, activity := range activities {
		if activity.Title == title {
			return activity
		}
	}
	return nil
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
