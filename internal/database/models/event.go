package models

import "time"

// Event is a competition that teams register for.
type Event struct {
	BaseModel
	Title                string    `json:"title" gorm:"size:200;not null;index" validate:"required,max=200"`
	Description          string    `json:"description" gorm:"type:text;not null" validate:"required"`
	Date                 time.Time `json:"date" gorm:"not null;index" validate:"required"`
	Venue                string    `json:"venue" gorm:"size:200;not null" validate:"required,max=200"`
	MaxTeamSize          int       `json:"maxTeamSize" gorm:"not null;default:1" validate:"gtefield=MinTeamSize"`
	MinTeamSize          int       `json:"minTeamSize" gorm:"not null;default:1" validate:"min=1"`
	RegistrationDeadline time.Time `json:"registrationDeadline" gorm:"not null" validate:"required,ltefield=Date"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
