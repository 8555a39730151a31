package domain

import (
	"errors"
	"time"
)

var ErrCompanyNotFound = errors.New("company not found")

// Company is a client organisation record kept for directory purposes only.
type Company struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Industry  string    `json:"industry,omitempty" bson:"industry,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
