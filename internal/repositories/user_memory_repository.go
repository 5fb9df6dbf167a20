package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"teslo/internal/apperrors"
	"teslo/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user. Emails are unique.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("email '%s' %w", user.Email, apperrors.ErrConflict)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	stored.Roles = user.Roles.Clone()
	r.users[user.ID] = stored
	return nil
}

// GetByEmail returns a user by email.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u.Roles = u.Roles.Clone()
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s %w", email, apperrors.ErrNotFound)
}

// GetByID returns a user by ID.
func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s %w", id, apperrors.ErrNotFound)
	}
	u.Roles = u.Roles.Clone()
	return &u, nil
}
