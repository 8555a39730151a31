package memory

import (
	"context"
	"sort"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

type projectStore struct {
	s *Store
}

func (r *projectStore) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *p
	created.ID = newID()
	r.s.projects[created.ID] = created
	return &created, nil
}

func (r *projectStore) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (r *projectStore) FindByIDs(_ context.Context, ids []string) ([]domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	var projects []domain.Project
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.s.projects[id]; ok {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *projectStore) List(_ context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var projects []domain.Project
	for _, p := range r.s.projects {
		if !matchesFilter(&p, filter) {
			continue
		}
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
	return projects, nil
}

func (r *projectStore) Update(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.s.projects[p.ID] = *p
	return nil
}

func (r *projectStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.s.projects, id)
	return nil
}

func (r *projectStore) CountByStatus(_ context.Context, filter ports.ProjectFilter) (map[domain.ProjectStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[domain.ProjectStatus]int64)
	for _, p := range r.s.projects {
		if !matchesFilter(&p, filter) {
			continue
		}
		counts[p.Status]++
	}
	return counts, nil
}

func matchesFilter(p *domain.Project, filter ports.ProjectFilter) bool {
	if filter.ClientID != "" && p.ClientID != filter.ClientID {
		return false
	}
	if filter.EmployeeID != "" && !p.HasEmployee(filter.EmployeeID) {
		return false
	}
	return true
}
