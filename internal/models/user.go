package models

import "time"

// DefaultRole is assigned to every newly registered user.
const DefaultRole = "user"

// User represents a user of the store.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string     `json:"name" gorm:"type:varchar(100);not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string     `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`
	Roles     StringList `json:"roles" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
