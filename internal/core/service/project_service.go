package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// ProjectService implements the project registry.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	catalog  ports.CatalogRepository
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, catalog ports.CatalogRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, catalog: catalog, log: log}
}

func (s *ProjectService) Create(ctx context.Context, actor ports.Actor, in ports.CreateProjectInput) (*domain.Project, error) {
	if !domain.Can(actor.Role, domain.ActionCreateProject) {
		return nil, domain.ErrForbidden
	}

	employees := in.AssignedEmployees
	if employees == nil {
		employees = []string{}
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Name:              in.Name,
		Description:       in.Description,
		ClientID:          in.ClientID,
		AssignedEmployees: employees,
		Status:            domain.ProjectPending,
		ServiceID:         in.ServiceID,
		Budget:            in.Budget,
		Deadline:          in.Deadline,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("client_id", created.ClientID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, actor ports.Actor, id string) (*ports.ProjectSummary, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(actor, project) {
		return nil, domain.ErrForbidden
	}

	summaries, err := s.summarize(ctx, []domain.Project{*project})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

// List is role-scoped: admins see all projects, clients the ones they own,
// employees exactly the ones they are assigned to.
func (s *ProjectService) List(ctx context.Context, actor ports.Actor) ([]ports.ProjectSummary, error) {
	var filter ports.ProjectFilter
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleClient:
		filter.ClientID = actor.ID
	case domain.RoleEmployee:
		filter.EmployeeID = actor.ID
	default:
		return nil, domain.ErrForbidden
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, projects)
}

// Update applies a patch under the role rules: admins may change any field,
// assigned employees only the status (their other patch fields are silently
// ignored), everyone else is rejected. Concurrent updates are
// last-writer-wins; there is no optimistic locking.
func (s *ProjectService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleAdmin:
		if in.Name != nil {
			project.Name = *in.Name
		}
		if in.Description != nil {
			project.Description = *in.Description
		}
		if in.ClientID != nil {
			project.ClientID = *in.ClientID
		}
		if in.AssignedEmployees != nil {
			project.AssignedEmployees = *in.AssignedEmployees
		}
		if in.Status != nil {
			project.Status = *in.Status
		}
		if in.Budget != nil {
			project.Budget = *in.Budget
		}
		if in.Deadline != nil {
			project.Deadline = in.Deadline
		}
	case domain.RoleEmployee:
		if !project.HasEmployee(actor.ID) {
			return nil, domain.ErrForbidden
		}
		if in.Status != nil {
			project.Status = *in.Status
		}
	default:
		return nil, domain.ErrForbidden
	}

	project.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Assign replaces the assignment set wholesale. Assigning [E2,E3] after
// [E1,E2] leaves exactly [E2,E3], not the union.
func (s *ProjectService) Assign(ctx context.Context, actor ports.Actor, id string, employeeIDs []string) (*domain.Project, error) {
	if !domain.Can(actor.Role, domain.ActionAssignProject) {
		return nil, domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employeeIDs == nil {
		employeeIDs = []string{}
	}
	project.AssignedEmployees = employeeIDs
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Int("employees", len(employeeIDs)).Msg("project assignment replaced")
	return project, nil
}

// Delete removes the project only; the originating request keeps its
// approved status and its now-dangling project reference.
func (s *ProjectService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !domain.Can(actor.Role, domain.ActionDeleteProject) {
		return domain.ErrForbidden
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func visibleTo(actor ports.Actor, p *domain.Project) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleClient:
		return p.ClientID == actor.ID
	case domain.RoleEmployee:
		return p.HasEmployee(actor.ID)
	}
	return false
}

func (s *ProjectService) summarize(ctx context.Context, projects []domain.Project) ([]ports.ProjectSummary, error) {
	clientIDs := make([]string, 0, len(projects))
	serviceIDs := make([]string, 0, len(projects))
	employeeIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		clientIDs = append(clientIDs, p.ClientID)
		if p.ServiceID != "" {
			serviceIDs = append(serviceIDs, p.ServiceID)
		}
		employeeIDs = append(employeeIDs, p.AssignedEmployees...)
	}

	clients, err := s.users.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	employees, err := s.users.FindByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]domain.User, len(clients)+len(employees))
	for _, u := range clients {
		usersByID[u.ID] = u
	}
	for _, u := range employees {
		usersByID[u.ID] = u
	}
	servicesByID := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		servicesByID[svc.ID] = svc
	}

	summaries := make([]ports.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summary := ports.ProjectSummary{Project: p, Employees: []ports.EmployeeRef{}}
		if u, ok := usersByID[p.ClientID]; ok {
			summary.ClientName = u.Name
		}
		if svc, ok := servicesByID[p.ServiceID]; ok {
			summary.ServiceName = svc.Name
		}
		for _, id := range p.AssignedEmployees {
			if u, ok := usersByID[id]; ok {
				summary.Employees = append(summary.Employees, ports.EmployeeRef{ID: u.ID, Name: u.Name, Position: u.Position})
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
