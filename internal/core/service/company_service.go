package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// CompanyService implements the company directory.
type CompanyService struct {
	companies ports.CompanyRepository
	log       zerolog.Logger
}

func NewCompanyService(companies ports.CompanyRepository, log zerolog.Logger) *CompanyService {
	return &CompanyService{companies: companies, log: log}
}

func (s *CompanyService) Create(ctx context.Context, actor ports.Actor, in ports.CompanyInput) (*domain.Company, error) {
	if !domain.Can(actor.Role, domain.ActionManageCompanies) {
		return nil, domain.ErrForbidden
	}
	company := &domain.Company{
		Name:      in.Name,
		Industry:  in.Industry,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	return s.companies.Create(ctx, company)
}

func (s *CompanyService) List(ctx context.Context, _ ports.Actor) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

// Update replaces the writable fields wholesale.
func (s *CompanyService) Update(ctx context.Context, actor ports.Actor, id string, in ports.CompanyInput) (*domain.Company, error) {
	if !domain.Can(actor.Role, domain.ActionManageCompanies) {
		return nil, domain.ErrForbidden
	}
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Name = in.Name
	company.Industry = in.Industry
	company.Email = in.Email
	company.Phone = in.Phone
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !domain.Can(actor.Role, domain.ActionManageCompanies) {
		return domain.ErrForbidden
	}
	return s.companies.Delete(ctx, id)
}
