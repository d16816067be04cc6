package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MinInstructionsLength is the shortest accepted instructions text.
const MinInstructionsLength = 20

// Recipe is a set of cooking instructions owned by a single user.
type Recipe struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"not null"`
	Instructions      string    `json:"instructions" gorm:"not null"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            int64     `json:"user_id" gorm:"not null;index"`
	User              *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Recipe model.
func (Recipe) TableName() string {
	return "recipes"
}

// Validate returns one message per violated rule, or nil.
func (r *Recipe) Validate() []string {
	var problems []string

	if strings.TrimSpace(r.Title) == "" {
		problems = append(problems, "Title must be present")
	}

	instructions := strings.TrimSpace(r.Instructions)
	switch {
	case instructions == "":
		problems = append(problems, "Instructions must be present")
	case utf8.RuneCountInString(instructions) < MinInstructionsLength:
		problems = append(problems, fmt.Sprintf("Instructions must be at least %d characters long", MinInstructionsLength))
	}

	if r.MinutesToComplete != nil && *r.MinutesToComplete < 0 {
		problems = append(problems, "Minutes to complete must not be negative")
	}

	if r.UserID <= 0 {
		problems = append(problems, "Recipe must belong to a user")
	}

	return problems
}
