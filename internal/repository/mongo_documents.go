package repository

import (
	"time"

	"event-dashboard-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes match the collections written by the registration frontend.

type eventDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Title                string             `bson:"title"`
	Description          string             `bson:"description"`
	Date                 time.Time          `bson:"date"`
	Venue                string             `bson:"venue"`
	MaxTeamSize          int                `bson:"maxTeamSize"`
	MinTeamSize          int                `bson:"minTeamSize"`
	RegistrationDeadline time.Time          `bson:"registrationDeadline"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt"`
}

type leaderDocument struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

type teamDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Name      string              `bson:"name"`
	Event     *primitive.ObjectID `bson:"event,omitempty"`
	Leader    leaderDocument      `bson:"leader"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func (d *eventDocument) toModel() models.Event {
	return models.Event{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:                d.Title,
		Description:          d.Description,
		Date:                 d.Date,
		Venue:                d.Venue,
		MaxTeamSize:          d.MaxTeamSize,
		MinTeamSize:          d.MinTeamSize,
		RegistrationDeadline: d.RegistrationDeadline,
	}
}

func (d *teamDocument) toModel() models.Team {
	team := models.Team{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Name: d.Name,
		Leader: models.Leader{
			Name:  d.Leader.Name,
			Email: d.Leader.Email,
			Phone: d.Leader.Phone,
		},
	}
	if d.Event != nil && !d.Event.IsZero() {
		eventID := d.Event.Hex()
		team.EventID = &eventID
	}
	return team
}

// objectIDOrNew parses id, generating a fresh ObjectID when id is empty.
func objectIDOrNew(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NewObjectID(), nil
	}
	return primitive.ObjectIDFromHex(id)
}

func stampTimes(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}
