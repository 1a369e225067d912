package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment belonging to a person
type Comment struct {
	ID        string    `json:"id"`
	Comment   string    `json:"comment"`
	PersonID  string    `json:"person_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment creates a new Comment with a generated UUID
func NewComment(comment, personID string) *Comment {
	return &Comment{
		ID:       uuid.New().String(),
		Comment:  comment,
		PersonID: personID,
	}
}

// Validate checks that the comment body and person reference are present
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Comment) == "" {
		return ErrCommentRequired
	}
	if strings.TrimSpace(c.PersonID) == "" {
		return ErrPersonIDRequired
	}
	return nil
}

// Common errors
var (
	ErrCommentRequired  = &ValidationError{Field: "comment", Message: "Comment is required"}
	ErrPersonIDRequired = &ValidationError{Field: "person_id", Message: "Person ID is required"}
)
