package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"event-dashboard-backend/internal/api/handlers"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/metrics"
	"event-dashboard-backend/internal/mocks"
	"event-dashboard-backend/internal/service"
	"event-dashboard-backend/internal/testutils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDashboardServiceInterface
	handler     *handlers.DashboardHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDashboardHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/dashboard", suite.handler.GetStats)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

// TestGetStats serves the snapshot with its exact field names
func (suite *DashboardHandlerTestSuite) TestGetStats() {
	stats := &service.DashboardStats{
		TotalTeams:  4,
		TotalEvents: 2,
		EventsList: []service.EventSummary{
			{ID: "e2", Title: "Alpha", TeamCount: 1},
			{ID: "e1", Title: "Beta", TeamCount: 2},
		},
		RecentRegistrations: []service.RecentRegistration{
			{ID: "t4", Name: "T4", CreatedAt: "2025-03-01T09:04:00.000Z"},
			{ID: "t3", Name: "T3", CreatedAt: "2025-03-01T09:03:00.000Z", EventID: strPtr("e1"), EventName: strPtr("Beta")},
		},
	}
	suite.mockService.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)
	before := testutil.ToFloat64(metrics.DashboardAggregations.WithLabelValues(metrics.ResultSuccess))

	recorder := suite.httpSuite.Get("/api/dashboard", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(float64(4), body["totalTeams"])
	suite.Equal(float64(2), body["totalEvents"])

	events := body["eventsList"].([]interface{})
	suite.Equal(map[string]interface{}{"_id": "e2", "title": "Alpha", "teamCount": float64(1)}, events[0])

	recent := body["recentRegistrations"].([]interface{})
	suite.Equal(map[string]interface{}{
		"_id":       "t4",
		"name":      "T4",
		"createdAt": "2025-03-01T09:04:00.000Z",
		"eventId":   nil,
		"eventName": nil,
	}, recent[0])
	suite.Equal("Beta", recent[1].(map[string]interface{})["eventName"])

	suite.Equal(before+1, testutil.ToFloat64(metrics.DashboardAggregations.WithLabelValues(metrics.ResultSuccess)))
}

// TestGetStatsEmpty keeps empty lists as JSON arrays
func (suite *DashboardHandlerTestSuite) TestGetStatsEmpty() {
	suite.mockService.EXPECT().GetStats(gomock.Any()).Return(&service.DashboardStats{
		EventsList:          []service.EventSummary{},
		RecentRegistrations: []service.RecentRegistration{},
	}, nil)

	recorder := suite.httpSuite.Get("/api/dashboard", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"totalTeams":0,"totalEvents":0,"eventsList":[],"recentRegistrations":[]}`, recorder.Body.String())
}

// TestGetStatsFailure hides the cause behind the generic message and logs it
func (suite *DashboardHandlerTestSuite) TestGetStatsFailure() {
	var logs bytes.Buffer
	logger.Setup("info", &logs)
	defer logger.Setup("info", nil)

	cause := errors.New("server selection timeout")
	suite.mockService.EXPECT().GetStats(gomock.Any()).Return(nil, apperrors.NewAggregationError("count events", cause))
	before := testutil.ToFloat64(metrics.DashboardAggregations.WithLabelValues(metrics.ResultFailure))

	recorder := suite.httpSuite.Get("/api/dashboard", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to fetch dashboard statistics")
	suite.NotContains(recorder.Body.String(), "server selection timeout")
	suite.Equal(before+1, testutil.ToFloat64(metrics.DashboardAggregations.WithLabelValues(metrics.ResultFailure)))

	var entry map[string]interface{}
	suite.Require().NoError(json.Unmarshal(logs.Bytes(), &entry))
	suite.Equal("error", entry["level"])
	suite.Contains(entry["error"], "server selection timeout")
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
