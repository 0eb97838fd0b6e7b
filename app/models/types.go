package models

import "time"

// User represents a registered account that can author posts.
type User struct {
	ID           string    `json:"id" validate:"required"`
	Username     string    `json:"username" validate:"required,min=1,max=64"`
	PasswordHash string    `json:"passwordHash" validate:"required"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserInfo is the public-safe projection of a User. It is what the
// presentation layer receives; the password hash never leaves the service.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Post represents a blog post owned by exactly one user.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=200"`
	Author    string    `json:"author" validate:"required"`
	Contents  string    `json:"contents"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostPatch carries a partial post update. Nil fields are left untouched.
type PostPatch struct {
	Title    *string  `json:"title"`
	Contents *string  `json:"contents"`
	Tags     []string `json:"tags"`
}
