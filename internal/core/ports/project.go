package ports

import (
	"context"
	"time"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// ProjectFilter narrows a project listing. At most one of ClientID and
// EmployeeID is set; both empty means no filter (admin view).
type ProjectFilter struct {
	ClientID   string
	EmployeeID string
}

// ProjectRepository defines persistence for the project registry.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindByIDs returns the projects whose ids resolve; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Project, error)
	// List returns projects newest first, narrowed by filter.
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	// Update replaces the stored document wholesale (last-writer-wins).
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, filter ProjectFilter) (map[domain.ProjectStatus]int64, error)
}

// CreateProjectInput carries the fields for direct admin creation.
type CreateProjectInput struct {
	Name              string
	Description       string
	ClientID          string
	AssignedEmployees []string
	ServiceID         string
	Budget            float64
	Deadline          *time.Time
}

// UpdateProjectInput is a patch; nil fields are left untouched. Admins may
// set every field; employees only Status, and their other patch fields are
// silently ignored, mirroring the portal's long-standing behavior.
type UpdateProjectInput struct {
	Name              *string
	Description       *string
	ClientID          *string
	AssignedEmployees *[]string
	Status            *domain.ProjectStatus
	Budget            *float64
	Deadline          *time.Time
}

// EmployeeRef is a resolved assignee shown in project views.
type EmployeeRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// ProjectSummary is a project with display fields resolved at read time.
type ProjectSummary struct {
	domain.Project
	ClientName  string        `json:"client_name,omitempty"`
	ServiceName string        `json:"service_name,omitempty"`
	Employees   []EmployeeRef `json:"employees"`
}

// ProjectService implements the project registry.
type ProjectService interface {
	Create(ctx context.Context, actor Actor, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor Actor, id string) (*ProjectSummary, error)
	// List is role-scoped: admins see all, clients their own, employees the
	// projects they are assigned to.
	List(ctx context.Context, actor Actor) ([]ProjectSummary, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateProjectInput) (*domain.Project, error)
	// Assign replaces the assignment set wholesale; it is never additive.
	Assign(ctx context.Context, actor Actor, id string, employeeIDs []string) (*domain.Project, error)
	// Delete is admin-only and does not retract the originating request.
	Delete(ctx context.Context, actor Actor, id string) error
}
