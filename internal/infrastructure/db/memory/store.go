// Package memory provides an in-process implementation of every repository
// port. It backs the test suite and single-node deployments where running
// MongoDB is not worth the trouble; the workflow logic upstream is identical
// for both stores.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// Store holds all six collections behind one mutex. Multi-record operations
// (the approve dual-write in particular) run inside a single critical
// section, which gives them the atomicity the workflow requires.
type Store struct {
	mu        sync.RWMutex
	users     map[string]domain.User
	companies map[string]domain.Company
	services  map[string]domain.Service
	requests  map[string]domain.ServiceRequest
	projects  map[string]domain.Project
	messages  []domain.Message
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		companies: make(map[string]domain.Company),
		services:  make(map[string]domain.Service),
		requests:  make(map[string]domain.ServiceRequest),
		projects:  make(map[string]domain.Project),
	}
}

func (s *Store) Users() ports.UserRepository        { return &userStore{s} }
func (s *Store) Companies() ports.CompanyRepository { return &companyStore{s} }
func (s *Store) Catalog() ports.CatalogRepository   { return &catalogStore{s} }
func (s *Store) Requests() ports.RequestRepository  { return &requestStore{s} }
func (s *Store) Projects() ports.ProjectRepository  { return &projectStore{s} }
func (s *Store) Messages() ports.MessageRepository  { return &messageStore{s} }

func newID() string {
	return uuid.NewString()
}
