package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

func newRequestFixture() (*RequestService, *stubRequestRepo, *stubCatalogRepo, *stubProjectRepo, *stubUserRepo) {
	users := newStubUserRepo()
	catalog := newStubCatalogRepo()
	projects := newStubProjectRepo()
	requests := newStubRequestRepo(projects)
	svc := NewRequestService(requests, catalog, projects, users, discardLogger)
	return svc, requests, catalog, projects, users
}

var (
	adminActor  = ports.Actor{ID: "admin_1", Role: domain.RoleAdmin}
	clientActor = ports.Actor{ID: "client_1", Role: domain.RoleClient}
)

func TestRequestService_Submit_CreatesPendingRequest(t *testing.T) {
	svc, _, catalog, _, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web Development", Price: 50000, IsActive: true})

	req, err := svc.Submit(context.Background(), clientActor, ports.SubmitRequestInput{
		ServiceID: "svc_web",
		Notes:     "company site relaunch",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != domain.RequestPending {
		t.Errorf("status: want %q, got %q", domain.RequestPending, req.Status)
	}
	if req.ClientID != clientActor.ID {
		t.Errorf("client_id: want %q, got %q", clientActor.ID, req.ClientID)
	}
	if req.Notes != "company site relaunch" {
		t.Errorf("notes not stored: %q", req.Notes)
	}
}

func TestRequestService_Submit_NonClientForbidden(t *testing.T) {
	svc, _, catalog, _, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", IsActive: true})

	for _, actor := range []ports.Actor{adminActor, {ID: "emp_1", Role: domain.RoleEmployee}} {
		_, err := svc.Submit(context.Background(), actor, ports.SubmitRequestInput{ServiceID: "svc_web"})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", actor.Role, err)
		}
	}
}

func TestRequestService_Submit_InactiveServiceRejected(t *testing.T) {
	svc, _, catalog, _, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_old", Name: "Legacy", IsActive: false})

	_, err := svc.Submit(context.Background(), clientActor, ports.SubmitRequestInput{ServiceID: "svc_old"})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Errorf("expected ErrServiceNotFound for inactive service, got %v", err)
	}
}

func TestRequestService_Approve_LinksRequestAndProjectBothWays(t *testing.T) {
	svc, requests, catalog, projects, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web Development", Price: 50000, IsActive: true})
	requests.seed(domain.ServiceRequest{
		ID:        "req_1",
		ClientID:  clientActor.ID,
		ServiceID: "svc_web",
		Notes:     "relaunch",
		Status:    domain.RequestPending,
	})

	result, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{AdminNote: "go ahead"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Request.Status != domain.RequestApproved {
		t.Errorf("request status: want approved, got %q", result.Request.Status)
	}
	if result.Request.AdminNote != "go ahead" {
		t.Errorf("admin note: got %q", result.Request.AdminNote)
	}
	if result.Request.ProjectID != result.Project.ID {
		t.Errorf("request→project link broken: %q vs %q", result.Request.ProjectID, result.Project.ID)
	}
	if result.Project.ServiceRequestID != "req_1" {
		t.Errorf("project→request link broken: %q", result.Project.ServiceRequestID)
	}

	stored, err := projects.FindByID(context.Background(), result.Project.ID)
	if err != nil {
		t.Fatalf("project was not persisted: %v", err)
	}
	if stored.ClientID != clientActor.ID {
		t.Errorf("project client: want %q, got %q", clientActor.ID, stored.ClientID)
	}
}

func TestRequestService_Approve_DefaultsFromService(t *testing.T) {
	svc, requests, catalog, _, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web Development", Price: 50000, IsActive: true})
	requests.seed(domain.ServiceRequest{
		ID:        "req_1",
		ClientID:  clientActor.ID,
		ServiceID: "svc_web",
		Notes:     "relaunch notes",
		Status:    domain.RequestPending,
	})

	result, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Project.Name != "Web Development Project" {
		t.Errorf("default name: got %q", result.Project.Name)
	}
	if result.Project.Description != "relaunch notes" {
		t.Errorf("default description: got %q", result.Project.Description)
	}
	if result.Project.Budget != 50000 {
		t.Errorf("default budget: want 50000, got %v", result.Project.Budget)
	}
	if result.Project.Status != domain.ProjectPending {
		t.Errorf("new project must be pending, got %q", result.Project.Status)
	}
	if result.Project.AssignedEmployees == nil || len(result.Project.AssignedEmployees) != 0 {
		t.Errorf("new project must start with empty assignment set, got %v", result.Project.AssignedEmployees)
	}
}

func TestRequestService_Approve_AdminOverridesWin(t *testing.T) {
	svc, requests, catalog, _, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web Development", Price: 50000, IsActive: true})
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: clientActor.ID, ServiceID: "svc_web", Status: domain.RequestPending})

	budget := 75000.0
	result, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{
		ProjectName: "Custom Portal",
		Description: "phase one only",
		Budget:      &budget,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Project.Name != "Custom Portal" {
		t.Errorf("name override lost: %q", result.Project.Name)
	}
	if result.Project.Description != "phase one only" {
		t.Errorf("description override lost: %q", result.Project.Description)
	}
	if result.Project.Budget != 75000 {
		t.Errorf("budget override lost: %v", result.Project.Budget)
	}
}

func TestRequestService_Approve_DeletedServiceDegradesDefaults(t *testing.T) {
	svc, requests, _, _, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: clientActor.ID, ServiceID: "svc_gone", Status: domain.RequestPending})

	result, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{})
	if err != nil {
		t.Fatalf("approval must tolerate a deleted service: %v", err)
	}
	if result.Project.Name != "Service Project" {
		t.Errorf("fallback name: got %q", result.Project.Name)
	}
	if result.Project.Budget != 0 {
		t.Errorf("fallback budget: want 0, got %v", result.Project.Budget)
	}
}

func TestRequestService_Approve_ClosedRequestRejected(t *testing.T) {
	svc, requests, catalog, projects, _ := newRequestFixture()
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web", Price: 100, IsActive: true})
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: clientActor.ID, ServiceID: "svc_web", Status: domain.RequestPending})

	if _, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{}); err != nil {
		t.Fatalf("first approval failed: %v", err)
	}

	_, err := svc.Approve(context.Background(), adminActor, "req_1", ports.ApproveRequestInput{})
	if !errors.Is(err, domain.ErrRequestClosed) {
		t.Errorf("second approval: expected ErrRequestClosed, got %v", err)
	}
	// Only one project must exist.
	all, _ := projects.List(context.Background(), ports.ProjectFilter{})
	if len(all) != 1 {
		t.Errorf("expected exactly 1 project, got %d", len(all))
	}

	_, err = svc.Reject(context.Background(), adminActor, "req_1", "late")
	if !errors.Is(err, domain.ErrRequestClosed) {
		t.Errorf("reject after approve: expected ErrRequestClosed, got %v", err)
	}
}

func TestRequestService_Approve_NonAdminForbidden(t *testing.T) {
	svc, requests, _, _, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", Status: domain.RequestPending})

	_, err := svc.Approve(context.Background(), clientActor, "req_1", ports.ApproveRequestInput{})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestService_Reject_NoProjectCreated(t *testing.T) {
	svc, requests, _, projects, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: clientActor.ID, Status: domain.RequestPending})

	rejected, err := svc.Reject(context.Background(), adminActor, "req_1", "budget unavailable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rejected.Status != domain.RequestRejected {
		t.Errorf("status: want rejected, got %q", rejected.Status)
	}
	if rejected.AdminNote != "budget unavailable" {
		t.Errorf("admin note: got %q", rejected.AdminNote)
	}
	all, _ := projects.List(context.Background(), ports.ProjectFilter{})
	if len(all) != 0 {
		t.Errorf("reject must not create a project, got %d", len(all))
	}
}

func TestRequestService_List_ClientSeesOnlyOwn(t *testing.T) {
	svc, requests, _, _, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: "client_1", Status: domain.RequestPending})
	requests.seed(domain.ServiceRequest{ID: "req_2", ClientID: "client_2", Status: domain.RequestPending})

	mine, err := svc.List(context.Background(), clientActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].ClientID != "client_1" {
		t.Errorf("client must see only own requests, got %+v", mine)
	}

	all, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin must see all requests, got %d", len(all))
	}
}

func TestRequestService_List_EmployeeForbidden(t *testing.T) {
	svc, _, _, _, _ := newRequestFixture()

	_, err := svc.List(context.Background(), ports.Actor{ID: "emp_1", Role: domain.RoleEmployee})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestService_List_ResolvesDisplayNames(t *testing.T) {
	svc, requests, catalog, projects, users := newRequestFixture()
	users.seed(domain.User{ID: "client_1", Name: "Ana Cliente", Role: domain.RoleClient})
	catalog.seed(domain.Service{ID: "svc_web", Name: "Web Development", Price: 50000, IsActive: true})
	projects.seed(domain.Project{ID: "proj_1", Name: "Relaunch", Status: domain.ProjectInProgress})
	requests.seed(domain.ServiceRequest{
		ID: "req_1", ClientID: "client_1", ServiceID: "svc_web",
		Status: domain.RequestApproved, ProjectID: "proj_1", CreatedAt: time.Now().UTC(),
	})

	out, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(out))
	}
	s := out[0]
	if s.ClientName != "Ana Cliente" {
		t.Errorf("client name: got %q", s.ClientName)
	}
	if s.ServiceName != "Web Development" || s.ServicePrice != 50000 {
		t.Errorf("service fields: got %q / %v", s.ServiceName, s.ServicePrice)
	}
	if s.ProjectName != "Relaunch" || s.ProjectStatus != domain.ProjectInProgress {
		t.Errorf("project fields: got %q / %q", s.ProjectName, s.ProjectStatus)
	}
}

func TestRequestService_List_DanglingReferencesResolveEmpty(t *testing.T) {
	svc, requests, _, _, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: "ghost", ServiceID: "gone", Status: domain.RequestPending})

	out, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("dangling references must not fail the listing: %v", err)
	}
	if out[0].ClientName != "" || out[0].ServiceName != "" {
		t.Errorf("dangling refs must render empty, got %q / %q", out[0].ClientName, out[0].ServiceName)
	}
}

func TestRequestService_Delete_AdminOnly(t *testing.T) {
	svc, requests, _, _, _ := newRequestFixture()
	requests.seed(domain.ServiceRequest{ID: "req_1", ClientID: "client_1", Status: domain.RequestPending})

	if err := svc.Delete(context.Background(), clientActor, "req_1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor, "req_1"); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor, "req_1"); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("second delete: expected ErrRequestNotFound, got %v", err)
	}
}
