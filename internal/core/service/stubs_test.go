package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. They mirror the semantics the real stores
// implement: copies on return, email uniqueness, conditional approve.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID map[string]*domain.User
	seq  int
	err  error // if set, every method returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(u domain.User) *domain.User {
	clone := u
	r.byID[u.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := *u
	r.seq++
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, role domain.Role) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.User
	for _, u := range r.byID {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	seen := make(map[string]struct{}, len(ids))
	var out []domain.User
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if u, ok := r.byID[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubCatalogRepo struct {
	byID map[string]*domain.Service
	seq  int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{byID: make(map[string]*domain.Service)}
}

func (r *stubCatalogRepo) seed(svc domain.Service) *domain.Service {
	clone := svc
	r.byID[svc.ID] = &clone
	return &clone
}

func (r *stubCatalogRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	clone := *svc
	r.seq++
	clone.ID = fmt.Sprintf("svc_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *svc
	return &clone, nil
}

func (r *stubCatalogRepo) List(_ context.Context) ([]domain.Service, error) {
	var out []domain.Service
	for _, svc := range r.byID {
		out = append(out, *svc)
	}
	return out, nil
}

func (r *stubCatalogRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Service, error) {
	seen := make(map[string]struct{}, len(ids))
	var out []domain.Service
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if svc, ok := r.byID[id]; ok {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.byID[svc.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *svc
	r.byID[svc.ID] = &clone
	return nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCatalogRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, svc := range r.byID {
		if svc.IsActive {
			n++
		}
	}
	return n, nil
}

type stubProjectRepo struct {
	byID map[string]*domain.Project
	seq  int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) seed(p domain.Project) *domain.Project {
	clone := p
	r.byID[p.ID] = &clone
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	clone := *p
	r.seq++
	clone.ID = fmt.Sprintf("proj_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Project, error) {
	seen := make(map[string]struct{}, len(ids))
	var out []domain.Project
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func matchesStubFilter(p *domain.Project, f ports.ProjectFilter) bool {
	if f.ClientID != "" && p.ClientID != f.ClientID {
		return false
	}
	if f.EmployeeID != "" && !p.HasEmployee(f.EmployeeID) {
		return false
	}
	return true
}

func (r *stubProjectRepo) List(_ context.Context, f ports.ProjectFilter) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.byID {
		if matchesStubFilter(p, f) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) CountByStatus(_ context.Context, f ports.ProjectFilter) (map[domain.ProjectStatus]int64, error) {
	counts := make(map[domain.ProjectStatus]int64)
	for _, p := range r.byID {
		if matchesStubFilter(p, f) {
			counts[p.Status]++
		}
	}
	return counts, nil
}

// stubRequestRepo performs the approve dual-write against a linked
// stubProjectRepo, the same shape the real stores use.
type stubRequestRepo struct {
	byID     map[string]*domain.ServiceRequest
	projects *stubProjectRepo
	seq      int
}

func newStubRequestRepo(projects *stubProjectRepo) *stubRequestRepo {
	return &stubRequestRepo{byID: make(map[string]*domain.ServiceRequest), projects: projects}
}

func (r *stubRequestRepo) seed(req domain.ServiceRequest) *domain.ServiceRequest {
	clone := req
	r.byID[req.ID] = &clone
	return &clone
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	clone := *req
	r.seq++
	clone.ID = fmt.Sprintf("req_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) List(_ context.Context, clientID string) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, req := range r.byID {
		if clientID != "" && req.ClientID != clientID {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *stubRequestRepo) Approve(ctx context.Context, id, adminNote string, project *domain.Project) (*domain.ServiceRequest, *domain.Project, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, nil, domain.ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return nil, nil, domain.ErrRequestClosed
	}

	proj := *project
	proj.ServiceRequestID = id
	created, err := r.projects.Create(ctx, &proj)
	if err != nil {
		return nil, nil, err
	}

	req.Status = domain.RequestApproved
	req.AdminNote = adminNote
	req.ProjectID = created.ID

	reqClone := *req
	return &reqClone, created, nil
}

func (r *stubRequestRepo) Reject(_ context.Context, id, adminNote string) (*domain.ServiceRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestClosed
	}
	req.Status = domain.RequestRejected
	req.AdminNote = adminNote
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRequestNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubRequestRepo) CountByStatus(_ context.Context, status domain.RequestStatus) (int64, error) {
	var n int64
	for _, req := range r.byID {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

type stubMessageRepo struct {
	msgs []domain.Message
	seq  int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := *m
	r.seq++
	clone.ID = fmt.Sprintf("msg_%d", r.seq)
	r.msgs = append(r.msgs, clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) ListBetween(_ context.Context, userA, userB string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.msgs {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, senderID, receiverID string) error {
	for i := range r.msgs {
		if r.msgs[i].SenderID == senderID && r.msgs[i].ReceiverID == receiverID {
			r.msgs[i].Read = true
		}
	}
	return nil
}

func (r *stubMessageRepo) ListByUser(_ context.Context, userID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.msgs {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) CountUnread(_ context.Context, receiverID string) (int64, error) {
	var n int64
	for _, m := range r.msgs {
		if m.ReceiverID == receiverID && !m.Read {
			n++
		}
	}
	return n, nil
}

type stubCompanyRepo struct {
	byID map[string]*domain.Company
	seq  int
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{byID: make(map[string]*domain.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	clone := *c
	r.seq++
	clone.ID = fmt.Sprintf("co_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompanyRepo) List(_ context.Context) ([]domain.Company, error) {
	var out []domain.Company
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, c *domain.Company) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.byID, id)
	return nil
}
