package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// UpdateProfileInput is the self-service patch a user may apply to their own
// account; nil fields are left untouched. Role and IsActive are deliberately
// absent; only an admin changes those.
type UpdateProfileInput struct {
	Name     *string
	Phone    *string
	Company  *string
	Position *string
	Avatar   *string
	Password *string
}

// AuthService implements login and self-service profile management.
type AuthService interface {
	// Login verifies credentials and returns a signed token with the user.
	// Deactivated accounts fail with domain.ErrAccountDisabled; repeated
	// failures trip domain.ErrTooManyAttempts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, actor Actor) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor Actor, in UpdateProfileInput) (*domain.User, error)
}
