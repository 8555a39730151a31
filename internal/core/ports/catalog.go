package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// CatalogRepository defines persistence for the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	// FindByIDs returns the services whose ids resolve; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

// ServiceInput carries the writable catalog fields.
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	Category    string
	IsActive    *bool
}

// CatalogService defines catalog management. Every role may browse the
// catalog; mutations are admin-only and never cascade to existing requests
// or projects.
type CatalogService interface {
	Create(ctx context.Context, actor Actor, in ServiceInput) (*domain.Service, error)
	List(ctx context.Context, actor Actor) ([]domain.Service, error)
	Update(ctx context.Context, actor Actor, id string, in ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, actor Actor, id string) error
}
