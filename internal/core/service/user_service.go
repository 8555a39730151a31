package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// UserService implements admin-side account management.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Create(ctx context.Context, actor ports.Actor, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.Can(actor.Role, domain.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Phone:        in.Phone,
		Company:      in.Company,
		Position:     in.Position,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, _ ports.Actor, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, actor ports.Actor, role domain.Role) ([]domain.User, error) {
	if !domain.Can(actor.Role, domain.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx, role)
}

func (s *UserService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !domain.Can(actor.Role, domain.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *in.Role
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.Position != nil {
		user.Position = *in.Position
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account outright. Projects, requests, and messages keep
// their references; listings resolve them to empty display values.
func (s *UserService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !domain.Can(actor.Role, domain.ActionManageUsers) {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
