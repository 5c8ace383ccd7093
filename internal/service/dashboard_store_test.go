package service_test

import (
	"context"
	"testing"

	"event-dashboard-backend/internal/database/models"
	"event-dashboard-backend/internal/repository"
	"event-dashboard-backend/internal/service"
	"event-dashboard-backend/internal/testutils"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

// DashboardStoreTestSuite runs the dashboard against real repositories on SQLite
type DashboardStoreTestSuite struct {
	suite.Suite
	repos   *repository.Repositories
	service *service.DashboardService
	clock   *clockwork.FakeClock
	events  *testutils.EventFactory
	teams   *testutils.TeamFactory
	ctx     context.Context
}

func (suite *DashboardStoreTestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(suite.T())
	suite.repos = repository.NewGormRepositories("sqlite", db)
	suite.service = service.NewDashboardService(suite.repos.Events, suite.repos.Teams)
	suite.clock = testutils.NewFakeClock()
	suite.events = testutils.NewEventFactory(suite.clock)
	suite.teams = testutils.NewTeamFactory(suite.clock)
	suite.ctx = context.Background()
}

func (suite *DashboardStoreTestSuite) seedEvent(title string) *models.Event {
	e := suite.events.WithTitle(title)
	suite.Require().NoError(suite.repos.Events.Create(suite.ctx, e))
	return e
}

func (suite *DashboardStoreTestSuite) seedTeam(name, eventID string) *models.Team {
	t := suite.teams.WithName(name, eventID)
	suite.Require().NoError(suite.repos.Teams.Create(suite.ctx, t))
	return t
}

func (suite *DashboardStoreTestSuite) TestSnapshotProperties() {
	beta := suite.seedEvent("Beta")
	alpha := suite.seedEvent("Alpha")
	suite.seedEvent("Gamma")

	suite.seedTeam("T1", beta.ID)
	suite.seedTeam("T2", alpha.ID)
	suite.seedTeam("T3", beta.ID)
	suite.seedTeam("T4", "")
	suite.seedTeam("T5", models.NewID())
	suite.seedTeam("T6", alpha.ID)

	stats, err := suite.service.GetStats(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(int64(3), stats.TotalEvents)
	suite.Equal(int64(6), stats.TotalTeams)
	suite.Len(stats.EventsList, int(stats.TotalEvents))

	var registered int64
	for i, e := range stats.EventsList {
		registered += e.TeamCount
		if i > 0 {
			suite.LessOrEqual(stats.EventsList[i-1].Title, e.Title)
		}
	}
	// T4 has no event and T5 points at a missing one
	suite.Equal(int64(4), registered)

	suite.Require().Len(stats.RecentRegistrations, service.RecentRegistrationsLimit)
	for i := 1; i < len(stats.RecentRegistrations); i++ {
		suite.Greater(stats.RecentRegistrations[i-1].CreatedAt, stats.RecentRegistrations[i].CreatedAt)
	}

	byName := map[string]service.RecentRegistration{}
	for _, r := range stats.RecentRegistrations {
		byName[r.Name] = r
	}
	suite.NotContains(byName, "T1")
	suite.Equal("Alpha", *byName["T6"].EventName)
	suite.Equal(service.UnknownEventName, *byName["T5"].EventName)
	suite.Nil(byName["T4"].EventID)
	suite.Nil(byName["T4"].EventName)
	suite.Equal("Beta", *byName["T3"].EventName)
}

func (suite *DashboardStoreTestSuite) TestConsecutiveCallsAgree() {
	alpha := suite.seedEvent("Alpha")
	suite.seedTeam("T1", alpha.ID)
	suite.seedTeam("T2", "")

	first, err := suite.service.GetStats(suite.ctx)
	suite.Require().NoError(err)
	second, err := suite.service.GetStats(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *DashboardStoreTestSuite) TestReadOnly() {
	alpha := suite.seedEvent("Alpha")
	suite.seedTeam("T1", alpha.ID)

	_, err := suite.service.GetStats(suite.ctx)
	suite.Require().NoError(err)

	events, _ := suite.repos.Events.Count(suite.ctx)
	teams, _ := suite.repos.Teams.Count(suite.ctx)
	suite.Equal(int64(1), events)
	suite.Equal(int64(1), teams)
}

func TestDashboardStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardStoreTestSuite))
}
