package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture file names inside a data directory
const (
	EventsFile = "events.yaml"
	TeamsFile  = "teams.yaml"
)

// EventData describes one event in events.yaml
type EventData struct {
	ID                   string    `yaml:"id" validate:"omitempty,len=24,hexadecimal"`
	Title                string    `yaml:"title" validate:"required"`
	Description          string    `yaml:"description" validate:"required"`
	Date                 time.Time `yaml:"date" validate:"required"`
	Venue                string    `yaml:"venue" validate:"required"`
	MaxTeamSize          int       `yaml:"maxTeamSize" validate:"gtefield=MinTeamSize"`
	MinTeamSize          int       `yaml:"minTeamSize" validate:"min=1"`
	RegistrationDeadline time.Time `yaml:"registrationDeadline" validate:"required,ltefield=Date"`
}

// LeaderData is a team leader's contact
type LeaderData struct {
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email" validate:"required,email"`
	Phone string `yaml:"phone"`
}

// TeamData describes one team in teams.yaml.
// The event is referenced by id or, when the id is unknown, by title.
type TeamData struct {
	ID         string     `yaml:"id" validate:"required,len=24,hexadecimal"`
	Name       string     `yaml:"name" validate:"required"`
	Event      string     `yaml:"event" validate:"omitempty,len=24,hexadecimal"`
	EventTitle string     `yaml:"event_title"`
	Leader     LeaderData `yaml:"leader"`
	CreatedAt  time.Time  `yaml:"createdAt"`
}

// EventsFileData is the layout of events.yaml
type EventsFileData struct {
	Events []EventData `yaml:"events"`
}

// TeamsFileData is the layout of teams.yaml
type TeamsFileData struct {
	Teams []TeamData `yaml:"teams"`
}

// Fixtures is everything read from a data directory
type Fixtures struct {
	Events []EventData
	Teams  []TeamData
}

// ReadDir reads events.yaml and teams.yaml from dir. A missing file contributes nothing.
func ReadDir(dir string) (*Fixtures, error) {
	var events EventsFileData
	if err := readYAML(filepath.Join(dir, EventsFile), &events); err != nil {
		return nil, err
	}

	var teams TeamsFileData
	if err := readYAML(filepath.Join(dir, TeamsFile), &teams); err != nil {
		return nil, err
	}

	return &Fixtures{Events: events.Events, Teams: teams.Teams}, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
