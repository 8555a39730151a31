package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// RequestService implements the request ledger and the approval workflow that
// derives projects from approved requests.
type RequestService struct {
	requests ports.RequestRepository
	catalog  ports.CatalogRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewRequestService(
	requests ports.RequestRepository,
	catalog ports.CatalogRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		catalog:  catalog,
		projects: projects,
		users:    users,
		log:      log,
	}
}

// Submit creates a pending request. Inactive services are treated the same as
// missing ones: the client cannot request them.
func (s *RequestService) Submit(ctx context.Context, actor ports.Actor, in ports.SubmitRequestInput) (*domain.ServiceRequest, error) {
	if !domain.Can(actor.Role, domain.ActionSubmitRequest) {
		return nil, domain.ErrForbidden
	}

	svc, err := s.catalog.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, domain.ErrServiceNotFound
	}

	req := &domain.ServiceRequest{
		ClientID:  actor.ID,
		ServiceID: svc.ID,
		Notes:     in.Notes,
		Status:    domain.RequestPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("request_id", created.ID).Str("client_id", actor.ID).Str("service_id", svc.ID).Msg("service request submitted")
	return created, nil
}

// Approve flips a pending request to approved and creates the linked project
// in one atomic step. The project defaults come from the request and its
// service; the admin may override any of them.
func (s *RequestService) Approve(ctx context.Context, actor ports.Actor, requestID string, in ports.ApproveRequestInput) (*ports.ApprovalResult, error) {
	if !domain.Can(actor.Role, domain.ActionReviewRequest) {
		return nil, domain.ErrForbidden
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestClosed
	}

	// The referenced service may have been deleted since submission; the
	// defaults then degrade rather than fail the approval.
	svc, err := s.catalog.FindByID(ctx, req.ServiceID)
	if err != nil && !errors.Is(err, domain.ErrServiceNotFound) {
		return nil, err
	}

	name := in.ProjectName
	if name == "" {
		if svc != nil {
			name = svc.Name + " Project"
		} else {
			name = "Service Project"
		}
	}
	description := in.Description
	if description == "" {
		description = req.Notes
	}
	budget := 0.0
	if svc != nil {
		budget = svc.Price
	}
	if in.Budget != nil {
		budget = *in.Budget
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Name:              name,
		Description:       description,
		ClientID:          req.ClientID,
		AssignedEmployees: []string{},
		Status:            domain.ProjectPending,
		ServiceID:         req.ServiceID,
		ServiceRequestID:  req.ID,
		Budget:            budget,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	approved, created, err := s.requests.Approve(ctx, req.ID, in.AdminNote, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", approved.ID).
		Str("project_id", created.ID).
		Float64("budget", created.Budget).
		Msg("service request approved")

	return &ports.ApprovalResult{Request: approved, Project: created}, nil
}

func (s *RequestService) Reject(ctx context.Context, actor ports.Actor, requestID, adminNote string) (*domain.ServiceRequest, error) {
	if !domain.Can(actor.Role, domain.ActionReviewRequest) {
		return nil, domain.ErrForbidden
	}

	rejected, err := s.requests.Reject(ctx, requestID, adminNote)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("request_id", rejected.ID).Msg("service request rejected")
	return rejected, nil
}

// List returns the ledger scoped to the caller: admins see everything,
// clients their own submissions. Employees have no request surface.
func (s *RequestService) List(ctx context.Context, actor ports.Actor) ([]ports.RequestSummary, error) {
	if !domain.Can(actor.Role, domain.ActionListRequests) {
		return nil, domain.ErrForbidden
	}

	clientID := ""
	if actor.Role == domain.RoleClient {
		clientID = actor.ID
	}

	requests, err := s.requests.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, requests)
}

func (s *RequestService) Delete(ctx context.Context, actor ports.Actor, requestID string) error {
	if !domain.Can(actor.Role, domain.ActionReviewRequest) {
		return domain.ErrForbidden
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return err
	}
	s.log.Info().Str("request_id", requestID).Msg("service request deleted")
	return nil
}

// summarize resolves display names for a page of requests. Dangling
// references (deleted client, service, or project) resolve to empty values.
func (s *RequestService) summarize(ctx context.Context, requests []domain.ServiceRequest) ([]ports.RequestSummary, error) {
	clientIDs := make([]string, 0, len(requests))
	serviceIDs := make([]string, 0, len(requests))
	projectIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		clientIDs = append(clientIDs, r.ClientID)
		serviceIDs = append(serviceIDs, r.ServiceID)
		if r.ProjectID != "" {
			projectIDs = append(projectIDs, r.ProjectID)
		}
	}

	clients, err := s.users.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.FindByIDs(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	clientsByID := make(map[string]domain.User, len(clients))
	for _, u := range clients {
		clientsByID[u.ID] = u
	}
	servicesByID := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		servicesByID[svc.ID] = svc
	}
	projectsByID := make(map[string]domain.Project, len(projects))
	for _, p := range projects {
		projectsByID[p.ID] = p
	}

	summaries := make([]ports.RequestSummary, 0, len(requests))
	for _, r := range requests {
		summary := ports.RequestSummary{ServiceRequest: r}
		if u, ok := clientsByID[r.ClientID]; ok {
			summary.ClientName = u.Name
		}
		if svc, ok := servicesByID[r.ServiceID]; ok {
			summary.ServiceName = svc.Name
			summary.ServicePrice = svc.Price
		}
		if p, ok := projectsByID[r.ProjectID]; ok {
			summary.ProjectName = p.Name
			summary.ProjectStatus = p.Status
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
