package domain

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleAdmin, ActionManageUsers, true},
		{RoleAdmin, ActionManageCompanies, true},
		{RoleAdmin, ActionManageCatalog, true},
		{RoleAdmin, ActionReviewRequest, true},
		{RoleAdmin, ActionListRequests, true},
		{RoleAdmin, ActionCreateProject, true},
		{RoleAdmin, ActionAssignProject, true},
		{RoleAdmin, ActionDeleteProject, true},
		{RoleAdmin, ActionSubmitRequest, false},

		{RoleEmployee, ActionManageUsers, false},
		{RoleEmployee, ActionSubmitRequest, false},
		{RoleEmployee, ActionListRequests, false},
		{RoleEmployee, ActionCreateProject, false},

		{RoleClient, ActionSubmitRequest, true},
		{RoleClient, ActionListRequests, true},
		{RoleClient, ActionManageUsers, false},
		{RoleClient, ActionReviewRequest, false},
		{RoleClient, ActionAssignProject, false},

		{Role("guest"), ActionListRequests, false},
		{Role(""), ActionManageUsers, false},
	}

	for _, tc := range cases {
		if got := Can(tc.role, tc.action); got != tc.want {
			t.Errorf("Can(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestCanMessage(t *testing.T) {
	cases := []struct {
		sender, receiver Role
		want             bool
	}{
		{RoleAdmin, RoleEmployee, true},
		{RoleEmployee, RoleAdmin, true},
		{RoleAdmin, RoleClient, true},
		{RoleClient, RoleAdmin, true},
		{RoleEmployee, RoleClient, true},
		{RoleClient, RoleEmployee, true},

		{RoleAdmin, RoleAdmin, false},
		{RoleEmployee, RoleEmployee, false},
		{RoleClient, RoleClient, false},

		{Role("guest"), RoleAdmin, false},
		{RoleAdmin, Role("guest"), false},
	}

	for _, tc := range cases {
		if got := CanMessage(tc.sender, tc.receiver); got != tc.want {
			t.Errorf("CanMessage(%q, %q) = %v, want %v", tc.sender, tc.receiver, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEmployee, RoleClient} {
		if !r.Valid() {
			t.Errorf("Valid(%q) = false", r)
		}
	}
	for _, r := range []Role{"", "guest", "Admin"} {
		if r.Valid() {
			t.Errorf("Valid(%q) = true", r)
		}
	}
}
