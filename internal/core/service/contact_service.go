package service

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// ContactService derives, per caller, the set of users they may open a
// conversation with. It owns no state: every call recomputes the result from
// the identity store and the project registry, because assignments change
// independently of any one user's view.
type ContactService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
}

func NewContactService(users ports.UserRepository, projects ports.ProjectRepository) *ContactService {
	return &ContactService{users: users, projects: projects}
}

// Contacts resolves the caller's messaging partners:
//
//	admin    → every other user
//	employee → all admins, plus the clients of projects they are assigned to
//	client   → all admins, plus the employees assigned to their projects
//
// An employee or client with no projects resolves to admins only.
func (s *ContactService) Contacts(ctx context.Context, actor ports.Actor) ([]domain.User, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		all, err := s.users.List(ctx, "")
		if err != nil {
			return nil, err
		}
		contacts := make([]domain.User, 0, len(all))
		for _, u := range all {
			if u.ID != actor.ID {
				contacts = append(contacts, u)
			}
		}
		return contacts, nil

	case domain.RoleEmployee:
		projects, err := s.projects.List(ctx, ports.ProjectFilter{EmployeeID: actor.ID})
		if err != nil {
			return nil, err
		}
		related := make([]string, 0, len(projects))
		for _, p := range projects {
			related = append(related, p.ClientID)
		}
		return s.adminsPlus(ctx, actor.ID, related)

	case domain.RoleClient:
		projects, err := s.projects.List(ctx, ports.ProjectFilter{ClientID: actor.ID})
		if err != nil {
			return nil, err
		}
		var related []string
		for _, p := range projects {
			related = append(related, p.AssignedEmployees...)
		}
		return s.adminsPlus(ctx, actor.ID, related)
	}

	return nil, domain.ErrForbidden
}

// adminsPlus returns every admin plus the users named in relatedIDs,
// deduplicated and with the caller excluded.
func (s *ContactService) adminsPlus(ctx context.Context, selfID string, relatedIDs []string) ([]domain.User, error) {
	admins, err := s.users.List(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	related, err := s.users.FindByIDs(ctx, relatedIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(admins)+len(related))
	contacts := make([]domain.User, 0, len(admins)+len(related))
	for _, u := range append(admins, related...) {
		if u.ID == selfID {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		contacts = append(contacts, u)
	}
	return contacts, nil
}
