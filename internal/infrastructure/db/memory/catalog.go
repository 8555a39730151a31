package memory

import (
	"context"
	"sort"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

type catalogStore struct {
	s *Store
}

func (r *catalogStore) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *svc
	created.ID = newID()
	r.s.services[created.ID] = created
	return &created, nil
}

func (r *catalogStore) FindByID(_ context.Context, id string) (*domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return &svc, nil
}

func (r *catalogStore) List(_ context.Context) ([]domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	services := make([]domain.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		if !services[i].CreatedAt.Equal(services[j].CreatedAt) {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		}
		return services[i].ID > services[j].ID
	})
	return services, nil
}

func (r *catalogStore) FindByIDs(_ context.Context, ids []string) ([]domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	var services []domain.Service
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if svc, ok := r.s.services[id]; ok {
			services = append(services, svc)
		}
	}
	return services, nil
}

func (r *catalogStore) Update(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[svc.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *catalogStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.s.services, id)
	return nil
}

func (r *catalogStore) CountActive(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, svc := range r.s.services {
		if svc.IsActive {
			n++
		}
	}
	return n, nil
}
