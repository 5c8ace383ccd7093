package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models.
// IDs are 24-character hex object IDs on every backend so records moved
// between the document store and Postgres keep their identity.
type BaseModel struct {
	ID        string    `json:"_id" gorm:"type:varchar(24);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the ID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = NewID()
	}
	return nil
}

// NewID returns a fresh object ID in hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is a well-formed object ID.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
