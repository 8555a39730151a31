package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// RequestRepository defines persistence for the request ledger.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// List returns requests newest first, optionally scoped to one client
	// (empty clientID = all).
	List(ctx context.Context, clientID string) ([]domain.ServiceRequest, error)
	// Approve atomically flips a pending request to approved, stores the
	// admin note, inserts the project, and links the two records both ways.
	// A reader never observes an approved request without its project.
	// Returns domain.ErrRequestClosed when the request is not pending.
	Approve(ctx context.Context, id, adminNote string, project *domain.Project) (*domain.ServiceRequest, *domain.Project, error)
	// Reject flips a pending request to rejected. Returns
	// domain.ErrRequestClosed when the request is not pending.
	Reject(ctx context.Context, id, adminNote string) (*domain.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error)
}

// SubmitRequestInput is what a client supplies when requesting a service.
type SubmitRequestInput struct {
	ServiceID string
	Notes     string
}

// ApproveRequestInput carries the admin's optional overrides. Zero values
// fall back to defaults sourced from the request and its service: the project
// name defaults to "<service name> Project", the description to the request
// notes, and the budget to the service price.
type ApproveRequestInput struct {
	ProjectName string
	Description string
	Budget      *float64
	AdminNote   string
}

// ApprovalResult is the outcome of an approval: the terminal request plus the
// project it spawned, linked in both directions.
type ApprovalResult struct {
	Request *domain.ServiceRequest `json:"request"`
	Project *domain.Project        `json:"project"`
}

// RequestSummary is a ledger entry with display names resolved at read time.
// Dangling references render as empty strings rather than failing the listing.
type RequestSummary struct {
	domain.ServiceRequest
	ClientName    string               `json:"client_name,omitempty"`
	ServiceName   string               `json:"service_name,omitempty"`
	ServicePrice  float64              `json:"service_price,omitempty"`
	ProjectName   string               `json:"project_name,omitempty"`
	ProjectStatus domain.ProjectStatus `json:"project_status,omitempty"`
}

// RequestService implements the request ledger and approval workflow.
type RequestService interface {
	// Submit creates a pending request. Only clients may submit; the target
	// service must exist and be active.
	Submit(ctx context.Context, actor Actor, in SubmitRequestInput) (*domain.ServiceRequest, error)
	// Approve transitions pending→approved and creates the linked project.
	Approve(ctx context.Context, actor Actor, requestID string, in ApproveRequestInput) (*ApprovalResult, error)
	// Reject transitions pending→rejected; no project is created.
	Reject(ctx context.Context, actor Actor, requestID, adminNote string) (*domain.ServiceRequest, error)
	// List returns all requests for admins and the caller's own for clients.
	// Employees have no request surface.
	List(ctx context.Context, actor Actor) ([]RequestSummary, error)
	// Delete is admin-only and unconditional; an already-created project is
	// never retracted.
	Delete(ctx context.Context, actor Actor, requestID string) error
}
