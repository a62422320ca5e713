package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportChannel represents an available support resource (hotline, email, site).
type SupportChannel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`

	// Contact information
	PhoneNumber string `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`
}
