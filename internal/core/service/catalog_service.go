package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// CatalogService implements management of the service catalog.
type CatalogService struct {
	catalog ports.CatalogRepository
	log     zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, log: log}
}

func (s *CatalogService) Create(ctx context.Context, actor ports.Actor, in ports.ServiceInput) (*domain.Service, error) {
	if !domain.Can(actor.Role, domain.ActionManageCatalog) {
		return nil, domain.ErrForbidden
	}

	svc := &domain.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Category:    in.Category,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if in.Category == "" {
		svc.Category = "General"
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	created, err := s.catalog.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("catalog service created")
	return created, nil
}

func (s *CatalogService) List(ctx context.Context, _ ports.Actor) ([]domain.Service, error) {
	return s.catalog.List(ctx)
}

// Update replaces the writable fields wholesale; a nil IsActive keeps the
// current flag.
func (s *CatalogService) Update(ctx context.Context, actor ports.Actor, id string, in ports.ServiceInput) (*domain.Service, error) {
	if !domain.Can(actor.Role, domain.ActionManageCatalog) {
		return nil, domain.ErrForbidden
	}

	svc, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.Price = in.Price
	svc.Duration = in.Duration
	if in.Category != "" {
		svc.Category = in.Category
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.catalog.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes the catalog entry only. Requests and projects referencing it
// keep their live reference and render an empty service name from then on.
func (s *CatalogService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !domain.Can(actor.Role, domain.ActionManageCatalog) {
		return domain.ErrForbidden
	}
	return s.catalog.Delete(ctx, id)
}
