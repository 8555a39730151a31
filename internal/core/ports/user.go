package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// UserRepository defines persistence for the identity store.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns users, optionally filtered by role (empty role = all).
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
	// FindByIDs returns the users whose ids resolve; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// CreateUserInput carries the fields an admin supplies for a new account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Phone    string
	Company  string
	Position string
}

// UpdateUserInput is an admin patch; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
	Phone    *string
	Company  *string
	Position *string
	IsActive *bool
}

// UserService defines admin-facing account management.
type UserService interface {
	Create(ctx context.Context, actor Actor, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.User, error)
	List(ctx context.Context, actor Actor, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateUserInput) (*domain.User, error)
	// Delete removes the account without cascading: projects and messages
	// keep their now-dangling references.
	Delete(ctx context.Context, actor Actor, id string) error
}
