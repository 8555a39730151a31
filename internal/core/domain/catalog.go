package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a purchasable offering in the catalog. Deleting a service does
// not cascade to requests or projects that reference it; listings resolve
// dangling references to an empty display name.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Duration    string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Category    string    `json:"category" bson:"category"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
