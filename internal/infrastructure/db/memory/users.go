package memory

import (
	"context"
	"sort"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

type userStore struct {
	s *Store
}

func (r *userStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}

	u := *user
	u.ID = newID()
	r.s.users[u.ID] = u
	return &u, nil
}

func (r *userStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *userStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userStore) List(_ context.Context, role domain.Role) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []domain.User
	for _, u := range r.s.users {
		if role != "" && u.Role != role {
			continue
		}
		users = append(users, u)
	}
	sortUsers(users)
	return users, nil
}

func (r *userStore) FindByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	var users []domain.User
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if u, ok := r.s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *userStore) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *userStore) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

func sortUsers(users []domain.User) {
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
}
