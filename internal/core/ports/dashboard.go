package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	TotalEmployees   int64                          `json:"total_employees"`
	TotalClients     int64                          `json:"total_clients"`
	TotalProjects    int64                          `json:"total_projects"`
	ActiveServices   int64                          `json:"active_services"`
	PendingRequests  int64                          `json:"pending_requests"`
	ProjectsByStatus map[domain.ProjectStatus]int64 `json:"projects_by_status"`
}

// MemberStats is the dashboard aggregate for employees and clients: the
// projects visible to them plus their unread message count. PendingRequests
// is filled for clients only.
type MemberStats struct {
	TotalProjects    int64                          `json:"total_projects"`
	ProjectsByStatus map[domain.ProjectStatus]int64 `json:"projects_by_status"`
	PendingRequests  int64                          `json:"pending_requests,omitempty"`
	UnreadMessages   int64                          `json:"unread_messages"`
}

// DashboardService computes the per-portal dashboard aggregates.
type DashboardService interface {
	AdminStats(ctx context.Context, actor Actor) (*AdminStats, error)
	EmployeeStats(ctx context.Context, actor Actor) (*MemberStats, error)
	ClientStats(ctx context.Context, actor Actor) (*MemberStats, error)
}
