package repositories

import (
	"database/sql"

	"github.com/mattlgroff/people-api/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment. The referenced person is checked inside
// the same transaction as the insert, so a comment is either written
// against an existing person or not written at all.
func (r *CommentRepository) Create(comment *models.Comment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM people WHERE id = ?`, comment.PersonID).Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}

	query := `
		INSERT INTO comments (
			id, comment, person_id
		) VALUES (?, ?, ?)
	`

	_, err = tx.Exec(query, comment.ID, comment.Comment, comment.PersonID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id string) (*models.Comment, error) {
	query := `
		SELECT id, comment, person_id, created_at, updated_at
		FROM comments WHERE id = ?
	`

	comment := &models.Comment{}
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID, &comment.Comment, &comment.PersonID, &comment.CreatedAt, &comment.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return comment, nil
}

// GetAll retrieves all comments
func (r *CommentRepository) GetAll() ([]*models.Comment, error) {
	query := `
		SELECT id, comment, person_id, created_at, updated_at
		FROM comments
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID, &comment.Comment, &comment.PersonID, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// GetByPersonID retrieves all comments left by a specific person
func (r *CommentRepository) GetByPersonID(personID string) ([]*models.Comment, error) {
	query := `
		SELECT id, comment, person_id, created_at, updated_at
		FROM comments
		WHERE person_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID, &comment.Comment, &comment.PersonID, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// Delete deletes a comment by ID
func (r *CommentRepository) Delete(id string) error {
	query := `DELETE FROM comments WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}
