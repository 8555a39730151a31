package service

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// DashboardService computes the per-portal landing-page aggregates. The
// numbers are recomputed from the stores on every call; nothing is cached.
type DashboardService struct {
	users    ports.UserRepository
	catalog  ports.CatalogRepository
	requests ports.RequestRepository
	projects ports.ProjectRepository
	messages ports.MessageRepository
}

func NewDashboardService(
	users ports.UserRepository,
	catalog ports.CatalogRepository,
	requests ports.RequestRepository,
	projects ports.ProjectRepository,
	messages ports.MessageRepository,
) *DashboardService {
	return &DashboardService{
		users:    users,
		catalog:  catalog,
		requests: requests,
		projects: projects,
		messages: messages,
	}
}

func (s *DashboardService) AdminStats(ctx context.Context, actor ports.Actor) (*ports.AdminStats, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	employees, err := s.users.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	clients, err := s.users.CountByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	activeServices, err := s.catalog.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.requests.CountByStatus(ctx, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.projects.CountByStatus(ctx, ports.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &ports.AdminStats{
		TotalEmployees:   employees,
		TotalClients:     clients,
		TotalProjects:    total,
		ActiveServices:   activeServices,
		PendingRequests:  pending,
		ProjectsByStatus: byStatus,
	}, nil
}

func (s *DashboardService) EmployeeStats(ctx context.Context, actor ports.Actor) (*ports.MemberStats, error) {
	if actor.Role != domain.RoleEmployee {
		return nil, domain.ErrForbidden
	}
	return s.memberStats(ctx, actor.ID, ports.ProjectFilter{EmployeeID: actor.ID})
}

func (s *DashboardService) ClientStats(ctx context.Context, actor ports.Actor) (*ports.MemberStats, error) {
	if actor.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}

	stats, err := s.memberStats(ctx, actor.ID, ports.ProjectFilter{ClientID: actor.ID})
	if err != nil {
		return nil, err
	}
	reqs, err := s.requests.List(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	for _, req := range reqs {
		if req.Status == domain.RequestPending {
			stats.PendingRequests++
		}
	}
	return stats, nil
}

func (s *DashboardService) memberStats(ctx context.Context, userID string, filter ports.ProjectFilter) (*ports.MemberStats, error) {
	byStatus, err := s.projects.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	unread, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &ports.MemberStats{
		TotalProjects:    total,
		ProjectsByStatus: byStatus,
		UnreadMessages:   unread,
	}, nil
}
