package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a person exposed through the API
type Person struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"job_title"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a new Person with a generated UUID
func NewPerson(firstName, lastName, email, jobTitle string, avatar *string) *Person {
	return &Person{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		JobTitle:  jobTitle,
		Avatar:    avatar,
	}
}

// FullName returns the first and last name joined by a single space.
// An absent part is omitted rather than producing a stray space.
func (p *Person) FullName() string {
	parts := make([]string, 0, 2)
	for _, part := range []string{p.FirstName, p.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Validate checks that all required person fields are present
func (p *Person) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(p.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(p.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(p.JobTitle) == "" {
		return ErrJobTitleRequired
	}
	return nil
}

// Common errors
var (
	ErrFirstNameRequired = &ValidationError{Field: "first_name", Message: "First name is required"}
	ErrLastNameRequired  = &ValidationError{Field: "last_name", Message: "Last name is required"}
	ErrEmailRequired     = &ValidationError{Field: "email", Message: "Email is required"}
	ErrEmailInvalid      = &ValidationError{Field: "email", Message: "Email is invalid"}
	ErrJobTitleRequired  = &ValidationError{Field: "job_title", Message: "Job title is required"}
)
