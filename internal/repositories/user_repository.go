package repositories

import "teslo/internal/models"

// UserRepository defines the interface for user data access. Emails are
// expected to be normalized by the caller.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
