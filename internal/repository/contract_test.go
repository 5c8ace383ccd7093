package repository

import (
	"context"
	"time"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/testutils"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

// storeContractSuite holds the behaviour every backend must share.
// Backend suites embed it and fill Events, Teams and reset.
type storeContractSuite struct {
	suite.Suite
	Events EventRepositoryInterface
	Teams  TeamRepositoryInterface

	reset  func()
	ctx    context.Context
	clock  *clockwork.FakeClock
	events *testutils.EventFactory
	teams  *testutils.TeamFactory
}

func (s *storeContractSuite) SetupTest() {
	if s.reset != nil {
		s.reset()
	}
	s.ctx = context.Background()
	s.clock = testutils.NewFakeClock()
	s.events = testutils.NewEventFactory(s.clock)
	s.teams = testutils.NewTeamFactory(s.clock)
}

func (s *storeContractSuite) createEvent(e *models.Event) *models.Event {
	s.Require().NoError(s.Events.Create(s.ctx, e))
	return e
}

func (s *storeContractSuite) createTeam(t *models.Team) *models.Team {
	s.Require().NoError(s.Teams.Create(s.ctx, t))
	return t
}

func (s *storeContractSuite) TestEventCountAndTitleOrder() {
	s.createEvent(s.events.WithTitle("Charlie"))
	s.createEvent(s.events.WithTitle("Alpha"))
	s.createEvent(s.events.WithTitle("Bravo"))

	total, err := s.Events.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(3), total)

	items, err := s.Events.ListByTitle(s.ctx)
	s.NoError(err)
	s.Require().Len(items, 3)
	s.Equal("Alpha", items[0].Title)
	s.Equal("Bravo", items[1].Title)
	s.Equal("Charlie", items[2].Title)
}

func (s *storeContractSuite) TestEventDateOrder() {
	base := testutils.BaseTime
	s.createEvent(s.events.WithDate("Late", base.AddDate(0, 2, 0)))
	s.createEvent(s.events.WithDate("Early", base.AddDate(0, 0, 10)))
	s.createEvent(s.events.WithDate("Middle", base.AddDate(0, 1, 0)))

	items, err := s.Events.ListByDate(s.ctx)
	s.NoError(err)
	s.Require().Len(items, 3)
	s.Equal([]string{"Early", "Middle", "Late"}, []string{items[0].Title, items[1].Title, items[2].Title})
}

func (s *storeContractSuite) TestEventGetByID() {
	created := s.createEvent(s.events.WithTitle("HydroBlasters"))

	got, err := s.Events.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Require().NotNil(got)
	s.Equal(created.ID, got.ID)
	s.Equal("HydroBlasters", got.Title)
	s.Equal(created.Venue, got.Venue)
	s.Equal(4, got.MaxTeamSize)
	s.Equal(3, got.MinTeamSize)
	s.WithinDuration(created.Date, got.Date, time.Millisecond)
	s.WithinDuration(created.RegistrationDeadline, got.RegistrationDeadline, time.Millisecond)
}

func (s *storeContractSuite) TestEventGetByIDNotFound() {
	got, err := s.Events.GetByID(s.ctx, models.NewID())
	s.Nil(got)
	s.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (s *storeContractSuite) TestEventGetByIDs() {
	a := s.createEvent(s.events.WithTitle("Data Mine"))
	b := s.createEvent(s.events.WithTitle("Gyan Yudh"))
	s.createEvent(s.events.WithTitle("Hoverpod"))

	items, err := s.Events.GetByIDs(s.ctx, []string{a.ID, b.ID, models.NewID()})
	s.NoError(err)
	s.Len(items, 2)

	titles := map[string]string{}
	for _, e := range items {
		titles[e.ID] = e.Title
	}
	s.Equal("Data Mine", titles[a.ID])
	s.Equal("Gyan Yudh", titles[b.ID])

	empty, err := s.Events.GetByIDs(s.ctx, nil)
	s.NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *storeContractSuite) TestEventGetByTitleReturnsOldest() {
	older := s.events.WithTitle("Treasure Hunt")
	s.createEvent(older)
	s.clock.Advance(time.Hour)
	newer := s.events.WithTitle("Treasure Hunt")
	s.createEvent(newer)

	got, err := s.Events.GetByTitle(s.ctx, "Treasure Hunt")
	s.NoError(err)
	s.Equal(older.ID, got.ID)

	_, err = s.Events.GetByTitle(s.ctx, "Mazecraft")
	s.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (s *storeContractSuite) TestEventCreateKeepsPinnedID() {
	e := s.events.WithTitle("Robo League")
	e.ID = "67b710919a01ff3f0a3c85e2"
	s.createEvent(e)

	got, err := s.Events.GetByID(s.ctx, "67b710919a01ff3f0a3c85e2")
	s.NoError(err)
	s.Equal("Robo League", got.Title)
}

func (s *storeContractSuite) TestTeamCountByEvent() {
	alpha := s.createEvent(s.events.WithTitle("Alpha"))
	beta := s.createEvent(s.events.WithTitle("Beta"))
	dangling := models.NewID()

	s.createTeam(s.teams.ForEvent(alpha.ID))
	s.createTeam(s.teams.ForEvent(alpha.ID))
	s.createTeam(s.teams.ForEvent(beta.ID))
	s.createTeam(s.teams.ForEvent(dangling))
	s.createTeam(s.teams.Create())

	total, err := s.Teams.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(5), total)

	counts, err := s.Teams.CountByEvent(s.ctx)
	s.NoError(err)
	s.Equal(map[string]int64{alpha.ID: 2, beta.ID: 1, dangling: 1}, counts)

	n, err := s.Teams.CountForEvent(s.ctx, alpha.ID)
	s.NoError(err)
	s.Equal(int64(2), n)
}

func (s *storeContractSuite) TestTeamCountByEventEmpty() {
	s.createTeam(s.teams.Create())

	counts, err := s.Teams.CountByEvent(s.ctx)
	s.NoError(err)
	s.Empty(counts)
}

func (s *storeContractSuite) TestTeamGetRecent() {
	var created []*models.Team
	for i := 0; i < 7; i++ {
		created = append(created, s.createTeam(s.teams.Create()))
	}

	recent, err := s.Teams.GetRecent(s.ctx, 5)
	s.NoError(err)
	s.Require().Len(recent, 5)
	for i, team := range recent {
		s.Equal(created[6-i].ID, team.ID)
	}
	for i := 1; i < len(recent); i++ {
		s.True(recent[i-1].CreatedAt.After(recent[i].CreatedAt))
	}
}

func (s *storeContractSuite) TestTeamList() {
	alpha := s.createEvent(s.events.WithTitle("Alpha"))
	for i := 0; i < 3; i++ {
		s.createTeam(s.teams.ForEvent(alpha.ID))
	}
	s.createTeam(s.teams.Create())

	all, total, err := s.Teams.List(s.ctx, nil, 2, 0)
	s.NoError(err)
	s.Equal(int64(4), total)
	s.Len(all, 2)
	s.Nil(all[0].EventID)

	page, total, err := s.Teams.List(s.ctx, &alpha.ID, 2, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 1)
	s.Require().NotNil(page[0].EventID)
	s.Equal(alpha.ID, *page[0].EventID)
}

func (s *storeContractSuite) TestTeamGetByID() {
	created := s.createTeam(s.teams.WithName("Code Wizards", ""))

	got, err := s.Teams.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Code Wizards", got.Name)
	s.Nil(got.EventID)
	s.Equal(created.Leader, got.Leader)
	s.WithinDuration(created.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = s.Teams.GetByID(s.ctx, models.NewID())
	s.ErrorIs(err, apperrors.ErrTeamNotFound)
}
