// Package models contains data models for the recipe service.
package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxUsernameLength bounds usernames, counted in characters.
const MaxUsernameLength = 64

// User represents a registered account.
type User struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	ImageURL       *string   `json:"image_url"`
	Bio            *string   `json:"bio"`
	PasswordDigest string    `json:"-" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// Validate returns one message per violated rule, or nil.
func (u *User) Validate() []string {
	var problems []string

	username := strings.TrimSpace(u.Username)
	switch {
	case username == "":
		problems = append(problems, "Username must be present")
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		problems = append(problems, "Username is too long")
	}

	if u.PasswordDigest == "" {
		problems = append(problems, "Password must be present")
	}

	return problems
}
