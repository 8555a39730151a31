package memory

import (
	"context"
	"sort"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

type companyStore struct {
	s *Store
}

func (r *companyStore) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *company
	c.ID = newID()
	r.s.companies[c.ID] = c
	return &c, nil
}

func (r *companyStore) FindByID(_ context.Context, id string) (*domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return &c, nil
}

func (r *companyStore) List(_ context.Context) ([]domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	companies := make([]domain.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		if !companies[i].CreatedAt.Equal(companies[j].CreatedAt) {
			return companies[i].CreatedAt.After(companies[j].CreatedAt)
		}
		return companies[i].ID > companies[j].ID
	})
	return companies, nil
}

func (r *companyStore) Update(_ context.Context, company *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	r.s.companies[company.ID] = *company
	return nil
}

func (r *companyStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.s.companies, id)
	return nil
}
