package models

// Leader holds the contact details of the person who registered a team.
type Leader struct {
	Name  string `json:"name" gorm:"size:100" validate:"required,max=100"`
	Email string `json:"email" gorm:"size:200" validate:"required,email"`
	Phone string `json:"phone" gorm:"size:40" validate:"max=40"`
}

// Team is a registered participant group.
// EventID carries no foreign key and may reference an event that no longer exists.
type Team struct {
	BaseModel
	Name    string  `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	EventID *string `json:"event,omitempty" gorm:"type:varchar(24);index"`
	Leader  Leader  `json:"leader" gorm:"embedded;embeddedPrefix:leader_"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasEvent reports whether the team references an event at all.
func (t *Team) HasEvent() bool {
	return t.EventID != nil && *t.EventID != ""
}
