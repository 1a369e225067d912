package services

import (
	"database/sql"

	"github.com/go-playground/validator/v10"

	"github.com/mattlgroff/people-api/internal/models"
	"github.com/mattlgroff/people-api/internal/repositories"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
	validate   *validator.Validate
}

func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{
		personRepo: personRepo,
		validate:   validator.New(),
	}
}

// CreatePerson validates and stores a new person, returning the stored
// record with its database-assigned timestamps.
func (s *PersonService) CreatePerson(person *models.Person) (*models.Person, error) {
	// Validate required fields
	if err := person.Validate(); err != nil {
		return nil, err
	}

	// Validate email format
	if err := s.validate.Var(person.Email, "email"); err != nil {
		return nil, models.ErrEmailInvalid
	}

	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}

	return s.personRepo.GetByID(person.ID)
}

// GetPerson retrieves a person by ID
func (s *PersonService) GetPerson(id string) (*models.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Resource: "person", ID: id}
		}
		return nil, err
	}

	return person, nil
}

// ListPeople retrieves all people
func (s *PersonService) ListPeople() ([]*models.Person, error) {
	return s.personRepo.GetAll()
}

// PersonExistsByEmail checks whether a person with the given email exists
func (s *PersonService) PersonExistsByEmail(email string) (bool, error) {
	return s.personRepo.ExistsByEmail(email)
}
