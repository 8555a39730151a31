package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

func TestUserEmailUniqueness(t *testing.T) {
	users := NewStore().Users()
	ctx := context.Background()

	first, err := users.Create(ctx, &domain.User{Name: "Dana", Email: "dana@example.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := users.Create(ctx, &domain.User{Name: "Other", Email: "dana@example.com", Role: domain.RoleClient}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate Create: err = %v, want ErrEmailTaken", err)
	}

	second, err := users.Create(ctx, &domain.User{Name: "Eli", Email: "eli@example.com", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Update may not steal another account's email either.
	second.Email = "dana@example.com"
	if err := users.Update(ctx, second); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("Update onto taken email: err = %v, want ErrEmailTaken", err)
	}

	// Re-saving your own email is fine.
	first.Name = "Dana R."
	if err := users.Update(ctx, first); err != nil {
		t.Fatalf("Update same email: %v", err)
	}
}

func TestUserFindByIDsSkipsMissingAndDuplicates(t *testing.T) {
	users := NewStore().Users()
	ctx := context.Background()

	u, err := users.Create(ctx, &domain.User{Email: "a@example.com", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := users.FindByIDs(ctx, []string{u.ID, "missing", u.ID})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(got) != 1 || got[0].ID != u.ID {
		t.Errorf("FindByIDs = %v, want exactly the one seeded user", got)
	}
}

func TestApproveCreatesLinkedProject(t *testing.T) {
	store := NewStore()
	requests := store.Requests()
	projects := store.Projects()
	ctx := context.Background()

	req, err := requests.Create(ctx, &domain.ServiceRequest{
		ClientID: "client_1",
		Status:   domain.RequestPending,
	})
	if err != nil {
		t.Fatalf("Create request: %v", err)
	}

	approved, proj, err := requests.Approve(ctx, req.ID, "looks good", &domain.Project{
		Name:     "Portal Build",
		ClientID: "client_1",
		Status:   domain.ProjectPending,
	})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != domain.RequestApproved {
		t.Errorf("Status = %s, want approved", approved.Status)
	}
	if approved.AdminNote != "looks good" {
		t.Errorf("AdminNote = %q", approved.AdminNote)
	}
	if approved.ProjectID != proj.ID {
		t.Errorf("ProjectID = %q, want %q", approved.ProjectID, proj.ID)
	}
	if proj.ServiceRequestID != req.ID {
		t.Errorf("ServiceRequestID = %q, want %q", proj.ServiceRequestID, req.ID)
	}

	persisted, err := projects.FindByID(ctx, proj.ID)
	if err != nil {
		t.Fatalf("project not persisted: %v", err)
	}
	if persisted.Name != "Portal Build" {
		t.Errorf("persisted Name = %q", persisted.Name)
	}
}

func TestApproveOnlyOnce(t *testing.T) {
	store := NewStore()
	requests := store.Requests()
	ctx := context.Background()

	req, err := requests.Create(ctx, &domain.ServiceRequest{ClientID: "client_1", Status: domain.RequestPending})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := requests.Approve(ctx, req.ID, "", &domain.Project{ClientID: "client_1"}); err != nil {
		t.Fatalf("first Approve: %v", err)
	}

	if _, _, err := requests.Approve(ctx, req.ID, "", &domain.Project{ClientID: "client_1"}); !errors.Is(err, domain.ErrRequestClosed) {
		t.Errorf("second Approve: err = %v, want ErrRequestClosed", err)
	}
	if _, err := requests.Reject(ctx, req.ID, "nope"); !errors.Is(err, domain.ErrRequestClosed) {
		t.Errorf("Reject after Approve: err = %v, want ErrRequestClosed", err)
	}

	// Exactly one project came out of the approval.
	all, err := store.Projects().List(ctx, ports.ProjectFilter{})
	if err != nil {
		t.Fatalf("List projects: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(projects) = %d, want 1", len(all))
	}
}

func TestApproveMissingRequest(t *testing.T) {
	requests := NewStore().Requests()

	if _, _, err := requests.Approve(context.Background(), "missing", "", &domain.Project{}); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("err = %v, want ErrRequestNotFound", err)
	}
}

func TestRequestListNewestFirst(t *testing.T) {
	requests := NewStore().Requests()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, clientID := range []string{"client_1", "client_2", "client_1"} {
		if _, err := requests.Create(ctx, &domain.ServiceRequest{
			ClientID:  clientID,
			Status:    domain.RequestPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := requests.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("requests not newest-first at index %d", i)
		}
	}

	mine, err := requests.List(ctx, "client_1")
	if err != nil {
		t.Fatalf("List client_1: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("len(mine) = %d, want 2", len(mine))
	}
}

func TestProjectFilters(t *testing.T) {
	projects := NewStore().Projects()
	ctx := context.Background()

	seed := []domain.Project{
		{ClientID: "client_1", AssignedEmployees: []string{"emp_1"}, Status: domain.ProjectInProgress},
		{ClientID: "client_1", AssignedEmployees: []string{"emp_2"}, Status: domain.ProjectPending},
		{ClientID: "client_2", AssignedEmployees: []string{"emp_1", "emp_2"}, Status: domain.ProjectInProgress},
	}
	for i := range seed {
		if _, err := projects.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byClient, err := projects.List(ctx, ports.ProjectFilter{ClientID: "client_1"})
	if err != nil {
		t.Fatalf("List by client: %v", err)
	}
	if len(byClient) != 2 {
		t.Errorf("client_1 projects = %d, want 2", len(byClient))
	}

	byEmployee, err := projects.List(ctx, ports.ProjectFilter{EmployeeID: "emp_1"})
	if err != nil {
		t.Fatalf("List by employee: %v", err)
	}
	if len(byEmployee) != 2 {
		t.Errorf("emp_1 projects = %d, want 2", len(byEmployee))
	}

	both, err := projects.List(ctx, ports.ProjectFilter{ClientID: "client_2", EmployeeID: "emp_1"})
	if err != nil {
		t.Fatalf("List combined: %v", err)
	}
	if len(both) != 1 {
		t.Errorf("combined filter = %d, want 1", len(both))
	}

	counts, err := projects.CountByStatus(ctx, ports.ProjectFilter{ClientID: "client_1"})
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[domain.ProjectInProgress] != 1 || counts[domain.ProjectPending] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestMessagesMarkReadAndCount(t *testing.T) {
	messages := NewStore().Messages()
	ctx := context.Background()

	send := func(from, to, body string) {
		t.Helper()
		if _, err := messages.Create(ctx, &domain.Message{SenderID: from, ReceiverID: to, Content: body}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	send("client_1", "emp_1", "first")
	send("emp_1", "client_1", "reply")
	send("client_1", "emp_1", "second")
	send("client_2", "emp_1", "unrelated")

	thread, err := messages.ListBetween(ctx, "client_1", "emp_1")
	if err != nil {
		t.Fatalf("ListBetween: %v", err)
	}
	if len(thread) != 3 {
		t.Fatalf("len(thread) = %d, want 3", len(thread))
	}
	if thread[0].Content != "first" || thread[2].Content != "second" {
		t.Errorf("thread out of insertion order: %v", thread)
	}

	unread, err := messages.CountUnread(ctx, "emp_1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if unread != 3 {
		t.Errorf("unread = %d, want 3", unread)
	}

	if err := messages.MarkRead(ctx, "client_1", "emp_1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	unread, err = messages.CountUnread(ctx, "emp_1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread after MarkRead = %d, want 1 (the unrelated sender)", unread)
	}

	// The counterpart's own unread count is untouched.
	unread, err = messages.CountUnread(ctx, "client_1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if unread != 1 {
		t.Errorf("client_1 unread = %d, want 1", unread)
	}
}
