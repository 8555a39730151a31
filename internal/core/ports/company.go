package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// CompanyRepository defines persistence for the company directory.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
}

// CompanyInput carries the writable company fields.
type CompanyInput struct {
	Name     string
	Industry string
	Email    string
	Phone    string
}

// CompanyService defines directory management. Listing is open to all
// authenticated users; mutations are admin-only.
type CompanyService interface {
	Create(ctx context.Context, actor Actor, in CompanyInput) (*domain.Company, error)
	List(ctx context.Context, actor Actor) ([]domain.Company, error)
	Update(ctx context.Context, actor Actor, id string, in CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, actor Actor, id string) error
}
