package repository

import (
	"time"

	"github.com/natarchives/visitordesk/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
		if user.Email != "" && u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	user.ID = r.nextUserID
	r.nextUserID++
	user.CreatedAt = time.Now()
	user.Version = 1

	r.users[user.ID] = *user

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}

	return nil, ErrNotFound
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for id := int64(1); id < r.nextUserID; id++ {
		if u, ok := r.users[id]; ok {
			user := u
			users = append(users, &user)
		}
	}

	return users, nil
}

// UpdateUser replaces the stored record with the caller's copy. The version
// must match the stored one, otherwise the caller is working from a stale
// read and gets ErrEditConflict.
func (r *Repository) UpdateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != user.Version {
		return ErrEditConflict
	}

	for _, u := range r.users {
		if u.ID != user.ID && user.Email != "" && u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	user.Username = stored.Username
	user.CreatedAt = stored.CreatedAt
	user.Version = stored.Version + 1

	r.users[user.ID] = *user

	return nil
}

func (r *Repository) UpdateUserLastLogin(id int64, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}

	user.LastLogin = &t
	user.Version++
	r.users[id] = user

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}

	return false, nil
}
