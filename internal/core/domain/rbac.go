package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Action names an operation subject to role-based authorization. Keeping the
// grants as data means the permission model lives in one table instead of
// being re-derived in every handler.
type Action string

const (
	ActionManageUsers     Action = "users.manage"
	ActionManageCompanies Action = "companies.manage"
	ActionManageCatalog   Action = "catalog.manage"
	ActionSubmitRequest   Action = "requests.submit"
	ActionReviewRequest   Action = "requests.review"
	ActionListRequests    Action = "requests.list"
	ActionCreateProject   Action = "projects.create"
	ActionAssignProject   Action = "projects.assign"
	ActionDeleteProject   Action = "projects.delete"
)

var capabilities = map[Role]map[Action]struct{}{
	RoleAdmin: {
		ActionManageUsers:     {},
		ActionManageCompanies: {},
		ActionManageCatalog:   {},
		ActionReviewRequest:   {},
		ActionListRequests:    {},
		ActionCreateProject:   {},
		ActionAssignProject:   {},
		ActionDeleteProject:   {},
	},
	RoleEmployee: {},
	RoleClient: {
		ActionSubmitRequest: {},
		ActionListRequests:  {},
	},
}

// Can reports whether the role is granted the action.
func Can(role Role, action Action) bool {
	grants, ok := capabilities[role]
	if !ok {
		return false
	}
	_, ok = grants[action]
	return ok
}

// messagingPeers lists, per role, the roles a user may exchange messages
// with. Self-messaging and same-role messaging are never permitted, which
// leaves exactly the three cross-role pairs in both directions.
var messagingPeers = map[Role][]Role{
	RoleAdmin:    {RoleEmployee, RoleClient},
	RoleEmployee: {RoleAdmin, RoleClient},
	RoleClient:   {RoleAdmin, RoleEmployee},
}

// CanMessage reports whether a user with role sender may send a message to a
// user with role receiver.
func CanMessage(sender, receiver Role) bool {
	for _, peer := range messagingPeers[sender] {
		if peer == receiver {
			return true
		}
	}
	return false
}
