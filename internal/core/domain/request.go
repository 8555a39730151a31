package domain

import (
	"errors"
	"time"
)

// RequestStatus is the lifecycle state of a service request. Approved and
// rejected are terminal; there is no re-opening.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

var ErrRequestNotFound = errors.New("service request not found")
var ErrRequestClosed = errors.New("service request is no longer pending")

// ServiceRequest is a client's intent to purchase a cataloged service.
// ProjectID is set exactly once, when an admin approves the request.
type ServiceRequest struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	ServiceID string        `json:"service_id" bson:"service_id"`
	Notes     string        `json:"notes" bson:"notes"`
	Status    RequestStatus `json:"status" bson:"status"`
	AdminNote string        `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	ProjectID string        `json:"project_id,omitempty" bson:"project_id,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
