package testutils

import (
	"fmt"
	"time"

	"event-dashboard-backend/internal/database/models"

	"github.com/jonboulle/clockwork"
)

// BaseTime is the instant fake clocks in tests start from.
var BaseTime = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// NewFakeClock returns a fake clock positioned at BaseTime.
func NewFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(BaseTime)
}

// EventFactory provides methods to create test Event data
type EventFactory struct {
	clock clockwork.Clock
}

// NewEventFactory creates a new EventFactory
func NewEventFactory(clock clockwork.Clock) *EventFactory {
	return &EventFactory{clock: clock}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	now := f.clock.Now().UTC()
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        models.NewID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:                "Robotrail",
		Description:          "Design and construct a line-following robot that navigates a predefined path.",
		Date:                 now.AddDate(0, 1, 3),
		Venue:                "Mechanical Dept, Jadavpur University",
		MaxTeamSize:          4,
		MinTeamSize:          3,
		RegistrationDeadline: now.AddDate(0, 0, 29),
	}
}

// WithTitle sets a custom title for the event
func (f *EventFactory) WithTitle(title string) *models.Event {
	event := f.Create()
	event.Title = title
	return event
}

// WithDate sets a custom date for the event; the deadline moves to five days earlier
func (f *EventFactory) WithDate(title string, date time.Time) *models.Event {
	event := f.WithTitle(title)
	event.Date = date.UTC()
	event.RegistrationDeadline = event.Date.AddDate(0, 0, -5)
	return event
}

// TeamFactory provides methods to create test Team data.
// Every team it creates is one minute newer than the previous one.
type TeamFactory struct {
	clock *clockwork.FakeClock
	seq   int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory(clock *clockwork.FakeClock) *TeamFactory {
	return &TeamFactory{clock: clock}
}

// Create creates a test Team with no event reference
func (f *TeamFactory) Create() *models.Team {
	f.seq++
	f.clock.Advance(time.Minute)
	now := f.clock.Now().UTC()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        models.NewID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: fmt.Sprintf("Team %02d", f.seq),
		Leader: models.Leader{
			Name:  fmt.Sprintf("Leader %02d", f.seq),
			Email: fmt.Sprintf("leader%02d@example.com", f.seq),
			Phone: "+91 98300 00000",
		},
	}
}

// ForEvent creates a test Team registered for eventID
func (f *TeamFactory) ForEvent(eventID string) *models.Team {
	team := f.Create()
	id := eventID
	team.EventID = &id
	return team
}

// WithName creates a test Team with a custom name registered for eventID; empty eventID means none
func (f *TeamFactory) WithName(name, eventID string) *models.Team {
	team := f.Create()
	team.Name = name
	if eventID != "" {
		id := eventID
		team.EventID = &id
	}
	return team
}
