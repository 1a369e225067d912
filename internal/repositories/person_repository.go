package repositories

import (
	"database/sql"

	"github.com/mattlgroff/people-api/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	query := `
		INSERT INTO people (
			id, first_name, last_name, email, job_title, avatar
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, person.ID, person.FirstName, person.LastName, person.Email, person.JobTitle, person.Avatar)
	return err
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	query := `
		SELECT id, first_name, last_name, email, job_title, avatar, created_at, updated_at
		FROM people WHERE id = ?
	`

	person := &models.Person{}
	err := r.db.QueryRow(query, id).Scan(
		&person.ID, &person.FirstName, &person.LastName, &person.Email,
		&person.JobTitle, &person.Avatar, &person.CreatedAt, &person.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return person, nil
}

// GetAll retrieves all people
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, first_name, last_name, email, job_title, avatar, created_at, updated_at
		FROM people
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		err := rows.Scan(
			&person.ID, &person.FirstName, &person.LastName, &person.Email,
			&person.JobTitle, &person.Avatar, &person.CreatedAt, &person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, nil
}

// ExistsByEmail checks if a person exists by email
func (r *PersonRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT COUNT(*) FROM people WHERE email = ?`
	var count int
	err := r.db.QueryRow(query, email).Scan(&count)
	return count > 0, err
}

// Delete deletes a person by ID. Comments belonging to the person
// are removed by the ON DELETE CASCADE constraint.
func (r *PersonRepository) Delete(id string) error {
	query := `DELETE FROM people WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}
