package models

import (
	"time"

	"github.com/google/uuid"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return structError(validate.Struct(u))
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// Public returns the subset of the user that may leave the service layer.
func (u *User) Public() *UserInfo {
	return &UserInfo{ID: u.ID, Username: u.Username}
}
