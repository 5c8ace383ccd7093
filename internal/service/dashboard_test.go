package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/mocks"
	"event-dashboard-backend/internal/service"
	"event-dashboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEventRepo *mocks.MockEventRepositoryInterface
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	service       *service.DashboardService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewDashboardService(suite.mockEventRepo, suite.mockTeamRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

const (
	alphaID = "67b710919a01ff3f0a3c85e2"
	betaID  = "67b7102b9a01ff3f0a3c85e1"
	goneID  = "67b714b79a01ff3f0a3c85ee"
)

func strPtr(s string) *string { return &s }

func team(id, name string, eventID *string, created time.Time) models.Team {
	return models.Team{
		BaseModel: models.BaseModel{ID: id, CreatedAt: created},
		Name:      name,
		EventID:   eventID,
	}
}

func event(id, title string) models.Event {
	return models.Event{BaseModel: models.BaseModel{ID: id}, Title: title}
}

// expectBaseReads wires the concurrent reads with the given results
func (suite *DashboardServiceTestSuite) expectBaseReads(events []models.Event, teamTotal int64, counts map[string]int64, recent []models.Team) {
	suite.mockEventRepo.EXPECT().Count(gomock.Any()).Return(int64(len(events)), nil)
	suite.mockTeamRepo.EXPECT().Count(gomock.Any()).Return(teamTotal, nil)
	suite.mockEventRepo.EXPECT().ListByTitle(gomock.Any()).Return(events, nil)
	suite.mockTeamRepo.EXPECT().CountByEvent(gomock.Any()).Return(counts, nil)
	suite.mockTeamRepo.EXPECT().GetRecent(gomock.Any(), service.RecentRegistrationsLimit).Return(recent, nil)
}

// TestGetStatsAlphaBeta covers two events, three registered teams and one unregistered team
func (suite *DashboardServiceTestSuite) TestGetStatsAlphaBeta() {
	base := testutils.BaseTime
	recent := []models.Team{
		team("t4", "T4", nil, base.Add(4*time.Minute)),
		team("t3", "T3", strPtr(betaID), base.Add(3*time.Minute)),
		team("t2", "T2", strPtr(alphaID), base.Add(2*time.Minute)),
		team("t1", "T1", strPtr(betaID), base.Add(time.Minute)),
	}
	suite.expectBaseReads(
		[]models.Event{event(alphaID, "Alpha"), event(betaID, "Beta")},
		4,
		map[string]int64{betaID: 2, alphaID: 1},
		recent,
	)
	suite.mockEventRepo.EXPECT().
		GetByIDs(gomock.Any(), []string{betaID, alphaID}).
		Return([]models.Event{event(betaID, "Beta"), event(alphaID, "Alpha")}, nil)

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.TotalEvents)
	suite.Equal(int64(4), stats.TotalTeams)
	suite.Equal([]service.EventSummary{
		{ID: alphaID, Title: "Alpha", TeamCount: 1},
		{ID: betaID, Title: "Beta", TeamCount: 2},
	}, stats.EventsList)

	suite.Require().Len(stats.RecentRegistrations, 4)
	names := []string{}
	for _, r := range stats.RecentRegistrations {
		names = append(names, r.Name)
	}
	suite.Equal([]string{"T4", "T3", "T2", "T1"}, names)

	first := stats.RecentRegistrations[0]
	suite.Nil(first.EventID)
	suite.Nil(first.EventName)
	suite.Equal("2025-03-01T09:04:00.000Z", first.CreatedAt)

	suite.Equal(betaID, *stats.RecentRegistrations[1].EventID)
	suite.Equal("Beta", *stats.RecentRegistrations[1].EventName)
	suite.Equal("Alpha", *stats.RecentRegistrations[2].EventName)
	suite.Equal("Beta", *stats.RecentRegistrations[3].EventName)
}

// TestGetStatsDanglingReference labels a team whose event was deleted
func (suite *DashboardServiceTestSuite) TestGetStatsDanglingReference() {
	suite.expectBaseReads(
		[]models.Event{},
		1,
		map[string]int64{goneID: 1},
		[]models.Team{team("t5", "T5", strPtr(goneID), testutils.BaseTime)},
	)
	suite.mockEventRepo.EXPECT().GetByIDs(gomock.Any(), []string{goneID}).Return([]models.Event{}, nil)

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(stats.EventsList)
	suite.Require().Len(stats.RecentRegistrations, 1)
	suite.Equal(goneID, *stats.RecentRegistrations[0].EventID)
	suite.Equal(service.UnknownEventName, *stats.RecentRegistrations[0].EventName)
}

// TestGetStatsEmptyStores returns zero totals and empty, non-nil lists
func (suite *DashboardServiceTestSuite) TestGetStatsEmptyStores() {
	suite.expectBaseReads(nil, 0, map[string]int64{}, nil)

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Zero(stats.TotalEvents)
	suite.Zero(stats.TotalTeams)
	suite.NotNil(stats.EventsList)
	suite.Empty(stats.EventsList)
	suite.NotNil(stats.RecentRegistrations)
	suite.Empty(stats.RecentRegistrations)
}

// TestGetStatsEventWithoutTeams defaults the count to zero
func (suite *DashboardServiceTestSuite) TestGetStatsEventWithoutTeams() {
	suite.expectBaseReads([]models.Event{event(alphaID, "Alpha")}, 0, map[string]int64{}, nil)

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]service.EventSummary{{ID: alphaID, Title: "Alpha", TeamCount: 0}}, stats.EventsList)
}

// TestGetStatsTruncatesRecent never reports more than five teams
func (suite *DashboardServiceTestSuite) TestGetStatsTruncatesRecent() {
	var recent []models.Team
	for i := 7; i > 0; i-- {
		recent = append(recent, team(models.NewID(), "team", nil, testutils.BaseTime.Add(time.Duration(i)*time.Minute)))
	}
	suite.expectBaseReads(nil, 7, map[string]int64{}, recent)

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(stats.RecentRegistrations, service.RecentRegistrationsLimit)
	suite.Equal(int64(7), stats.TotalTeams)
}

// TestGetStatsStoreFailures maps every failing read to the aggregation error
func (suite *DashboardServiceTestSuite) TestGetStatsStoreFailures() {
	storeErr := errors.New("connection reset")

	cases := map[string]func(){
		"count events": func() {
			suite.mockEventRepo.EXPECT().Count(gomock.Any()).Return(int64(0), storeErr)
		},
		"count teams": func() {
			suite.mockTeamRepo.EXPECT().Count(gomock.Any()).Return(int64(0), storeErr)
		},
		"list events": func() {
			suite.mockEventRepo.EXPECT().ListByTitle(gomock.Any()).Return(nil, storeErr)
		},
		"count teams by event": func() {
			suite.mockTeamRepo.EXPECT().CountByEvent(gomock.Any()).Return(nil, storeErr)
		},
		"recent teams": func() {
			suite.mockTeamRepo.EXPECT().GetRecent(gomock.Any(), gomock.Any()).Return(nil, storeErr)
		},
	}

	for name, fail := range cases {
		suite.Run(name, func() {
			suite.SetupTest()
			fail()
			// The remaining reads may or may not run before the group cancels.
			suite.mockEventRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil).AnyTimes()
			suite.mockTeamRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil).AnyTimes()
			suite.mockEventRepo.EXPECT().ListByTitle(gomock.Any()).Return([]models.Event{}, nil).AnyTimes()
			suite.mockTeamRepo.EXPECT().CountByEvent(gomock.Any()).Return(map[string]int64{}, nil).AnyTimes()
			suite.mockTeamRepo.EXPECT().GetRecent(gomock.Any(), gomock.Any()).Return([]models.Team{}, nil).AnyTimes()

			stats, err := suite.service.GetStats(suite.ctx)

			suite.Nil(stats)
			suite.ErrorIs(err, apperrors.ErrDashboardStatsFailed)
			suite.ErrorIs(err, storeErr)
			suite.Contains(err.Error(), name)
		})
	}
}

// TestGetStatsTitleLookupFailure fails the whole snapshot
func (suite *DashboardServiceTestSuite) TestGetStatsTitleLookupFailure() {
	suite.expectBaseReads(
		[]models.Event{event(alphaID, "Alpha")},
		1,
		map[string]int64{alphaID: 1},
		[]models.Team{team("t1", "T1", strPtr(alphaID), testutils.BaseTime)},
	)
	suite.mockEventRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	stats, err := suite.service.GetStats(suite.ctx)

	suite.Nil(stats)
	suite.True(apperrors.IsAggregation(err))
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
