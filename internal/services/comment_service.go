package services

import (
	"database/sql"

	"github.com/mattlgroff/people-api/internal/models"
	"github.com/mattlgroff/people-api/internal/repositories"
)

type CommentService struct {
	commentRepo *repositories.CommentRepository
}

func NewCommentService(commentRepo *repositories.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
	}
}

// CreateComment validates and stores a new comment, returning the stored
// record with its database-assigned timestamps. The comment's person must
// already exist.
func (s *CommentService) CreateComment(comment *models.Comment) (*models.Comment, error) {
	// Validate required fields
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(comment); err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Resource: "person", ID: comment.PersonID}
		}
		return nil, err
	}

	return s.commentRepo.GetByID(comment.ID)
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Resource: "comment", ID: id}
		}
		return nil, err
	}

	return comment, nil
}

// ListComments retrieves all comments
func (s *CommentService) ListComments() ([]*models.Comment, error) {
	return s.commentRepo.GetAll()
}

// ListCommentsForPerson retrieves all comments left by a specific person
func (s *CommentService) ListCommentsForPerson(personID string) ([]*models.Comment, error) {
	return s.commentRepo.GetByPersonID(personID)
}
