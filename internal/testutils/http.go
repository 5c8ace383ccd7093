package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a gin engine for handler and routing tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// Get performs a GET request against the router with optional headers
func (suite *HTTPTestSuite) Get(target string, headers map[string]string) *httptest.ResponseRecorder {
	return Serve(suite.Router, http.MethodGet, target, headers)
}

// Serve executes a body-less request against any handler
func Serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts a {"error": message} body and nothing else
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"error": expectedMessage}, body)
}
