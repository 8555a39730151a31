package domain

import (
	"errors"
	"time"
)

// ProjectStatus is the delivery state of a project. Any authorized caller may
// set any value; there is deliberately no transition graph.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on-hold"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectInProgress, ProjectReview, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

var ErrProjectNotFound = errors.New("project not found")

// Project is a unit of delivery work, created directly by an admin or derived
// from an approved service request. ServiceID and ServiceRequestID are live
// references; deleting the referenced entity leaves them dangling on purpose.
type Project struct {
	ID                string        `json:"id" bson:"_id,omitempty"`
	Name              string        `json:"name" bson:"name"`
	Description       string        `json:"description" bson:"description"`
	ClientID          string        `json:"client_id" bson:"client_id"`
	AssignedEmployees []string      `json:"assigned_employees" bson:"assigned_employees"`
	Status            ProjectStatus `json:"status" bson:"status"`
	ServiceID         string        `json:"service_id,omitempty" bson:"service_id,omitempty"`
	ServiceRequestID  string        `json:"service_request_id,omitempty" bson:"service_request_id,omitempty"`
	Budget            float64       `json:"budget" bson:"budget"`
	Deadline          *time.Time    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at"`
}

// HasEmployee reports whether the employee is in the assignment set.
func (p *Project) HasEmployee(employeeID string) bool {
	for _, id := range p.AssignedEmployees {
		if id == employeeID {
			return true
		}
	}
	return false
}
