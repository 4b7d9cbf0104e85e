package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds a gin engine with the given controllers mounted
// under /api/v1, mirroring the route layout in cmd/main.go.
func CreateTestRouter(controllers ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	for _, controller := range controllers {
		controller.RegisterRoutes(v1)
	}

	return router
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	expectedStatus int,
) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	assert.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, expectedStatus, recorder.Code,
		"unexpected status for GET %s: %s", url, recorder.Body.String())

	return recorder
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	expectedStatus int,
	response any,
) {
	recorder := MakeGetRequest(t, router, url, expectedStatus)

	err := json.Unmarshal(recorder.Body.Bytes(), response)
	assert.NoError(t, err, "failed to unmarshal response: %s", recorder.Body.String())
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	request any,
	expectedStatus int,
) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if request != nil {
		err := json.NewEncoder(&body).Encode(request)
		assert.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, expectedStatus, recorder.Code,
		"unexpected status for POST %s: %s", url, recorder.Body.String())

	return recorder
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	request any,
	expectedStatus int,
	response any,
) {
	recorder := MakePostRequest(t, router, url, request, expectedStatus)

	err := json.Unmarshal(recorder.Body.Bytes(), response)
	assert.NoError(t, err, "failed to unmarshal response: %s", recorder.Body.String())
}
