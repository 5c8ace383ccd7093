package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Result counts what a load created and what already existed
type Result struct {
	EventsCreated int `json:"eventsCreated"`
	EventsSkipped int `json:"eventsSkipped"`
	TeamsCreated  int `json:"teamsCreated"`
	TeamsSkipped  int `json:"teamsSkipped"`
}

// Loader creates fixture records that are not in the store yet
type Loader struct {
	events    repository.EventRepositoryInterface
	teams     repository.TeamRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewLoader creates a new fixture loader
func NewLoader(events repository.EventRepositoryInterface, teams repository.TeamRepositoryInterface) *Loader {
	return &Loader{
		events:    events,
		teams:     teams,
		validator: validator.New(),
		log:       logger.New().WithField("component", "seed"),
	}
}

// LoadDir reads, validates and loads the fixtures in dir
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Result, error) {
	fixtures, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, fixtures)
}

// Validate checks every record and reports all problems at once
func (l *Loader) Validate(f *Fixtures) error {
	var errs error
	titles := make(map[string]struct{}, len(f.Events))

	for i := range f.Events {
		e := &f.Events[i]
		if err := l.validator.Struct(e); err != nil {
			errs = multierr.Append(errs, recordError("events", i, e.Title, err))
		}
		titles[e.Title] = struct{}{}
	}

	for i := range f.Teams {
		t := &f.Teams[i]
		if err := l.validator.Struct(t); err != nil {
			errs = multierr.Append(errs, recordError("teams", i, t.Name, err))
		}
		if t.Event == "" && t.EventTitle != "" {
			if _, ok := titles[t.EventTitle]; !ok {
				errs = multierr.Append(errs, apperrors.NewValidationError(
					fmt.Sprintf("teams[%d].event_title", i),
					fmt.Sprintf("no event titled %q in fixtures", t.EventTitle),
				))
			}
		}
	}

	return errs
}

// Load validates f and creates the missing records. Events are matched by id,
// then by title; teams by id. Nothing is written when validation fails.
func (l *Loader) Load(ctx context.Context, f *Fixtures) (*Result, error) {
	if err := l.Validate(f); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}

	result := &Result{}
	eventIDs := make(map[string]string, len(f.Events))

	for i := range f.Events {
		id, created, err := l.ensureEvent(ctx, &f.Events[i])
		if err != nil {
			return result, fmt.Errorf("failed to load event %s: %w", f.Events[i].Title, err)
		}
		eventIDs[f.Events[i].Title] = id
		if created {
			result.EventsCreated++
		} else {
			result.EventsSkipped++
		}
	}
	l.log.WithFields(map[string]interface{}{
		"created": result.EventsCreated,
		"total":   len(f.Events),
	}).Info("Events loaded")

	for i := range f.Teams {
		created, err := l.ensureTeam(ctx, &f.Teams[i], eventIDs)
		if err != nil {
			return result, fmt.Errorf("failed to load team %s: %w", f.Teams[i].Name, err)
		}
		if created {
			result.TeamsCreated++
		} else {
			result.TeamsSkipped++
		}
	}
	l.log.WithFields(map[string]interface{}{
		"created": result.TeamsCreated,
		"total":   len(f.Teams),
	}).Info("Teams loaded")

	return result, nil
}

func (l *Loader) ensureEvent(ctx context.Context, data *EventData) (string, bool, error) {
	if data.ID != "" {
		existing, err := l.events.GetByID(ctx, data.ID)
		if err == nil {
			return existing.ID, false, nil
		}
		if !apperrors.IsNotFound(err) {
			return "", false, err
		}
	}

	existing, err := l.events.GetByTitle(ctx, data.Title)
	if err == nil {
		if data.ID != "" && existing.ID != data.ID {
			l.log.WithFields(map[string]interface{}{
				"title":       data.Title,
				"fixture_id":  data.ID,
				"existing_id": existing.ID,
			}).Warn("Event exists under a different id, skipping")
		}
		return existing.ID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return "", false, err
	}

	event := &models.Event{
		BaseModel:            models.BaseModel{ID: data.ID},
		Title:                data.Title,
		Description:          data.Description,
		Date:                 data.Date.UTC(),
		Venue:                data.Venue,
		MaxTeamSize:          data.MaxTeamSize,
		MinTeamSize:          data.MinTeamSize,
		RegistrationDeadline: data.RegistrationDeadline.UTC(),
	}
	if err := l.events.Create(ctx, event); err != nil {
		return "", false, err
	}
	return event.ID, true, nil
}

func (l *Loader) ensureTeam(ctx context.Context, data *TeamData, eventIDs map[string]string) (bool, error) {
	_, err := l.teams.GetByID(ctx, data.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrTeamNotFound) {
		return false, err
	}

	team := &models.Team{
		BaseModel: models.BaseModel{
			ID:        data.ID,
			CreatedAt: data.CreatedAt.UTC(),
			UpdatedAt: data.CreatedAt.UTC(),
		},
		Name: data.Name,
		Leader: models.Leader{
			Name:  data.Leader.Name,
			Email: data.Leader.Email,
			Phone: data.Leader.Phone,
		},
	}
	switch {
	case data.Event != "":
		ref := data.Event
		team.EventID = &ref
	case data.EventTitle != "":
		ref := eventIDs[data.EventTitle]
		team.EventID = &ref
	}

	if err := l.teams.Create(ctx, team); err != nil {
		return false, err
	}
	return true, nil
}

func recordError(kind string, index int, name string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError(fmt.Sprintf("%s[%d]", kind, index), err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return apperrors.NewValidationError(
		fmt.Sprintf("%s[%d] %s", kind, index, name),
		strings.Join(fields, ", "),
	)
}
