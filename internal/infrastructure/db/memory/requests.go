package memory

import (
	"context"
	"sort"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

type requestStore struct {
	s *Store
}

func (r *requestStore) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *req
	created.ID = newID()
	r.s.requests[created.ID] = created
	return &created, nil
}

func (r *requestStore) FindByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *requestStore) List(_ context.Context, clientID string) ([]domain.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var requests []domain.ServiceRequest
	for _, req := range r.s.requests {
		if clientID != "" && req.ClientID != clientID {
			continue
		}
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})
	return requests, nil
}

// Approve runs the whole dual-write inside one critical section: the status
// flip, the project insert, and both link assignments commit together or not
// at all.
func (r *requestStore) Approve(_ context.Context, id, adminNote string, project *domain.Project) (*domain.ServiceRequest, *domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil, domain.ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return nil, nil, domain.ErrRequestClosed
	}

	created := *project
	created.ID = newID()
	created.ServiceRequestID = req.ID

	req.Status = domain.RequestApproved
	req.AdminNote = adminNote
	req.ProjectID = created.ID

	r.s.projects[created.ID] = created
	r.s.requests[req.ID] = req

	return &req, &created, nil
}

func (r *requestStore) Reject(_ context.Context, id, adminNote string) (*domain.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestClosed
	}

	req.Status = domain.RequestRejected
	req.AdminNote = adminNote
	r.s.requests[req.ID] = req

	return &req, nil
}

func (r *requestStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[id]; !ok {
		return domain.ErrRequestNotFound
	}
	delete(r.s.requests, id)
	return nil
}

func (r *requestStore) CountByStatus(_ context.Context, status domain.RequestStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, req := range r.s.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}
