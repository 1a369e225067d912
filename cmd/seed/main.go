package main

import (
	"github.com/mattlgroff/people-api/internal/models"
	"github.com/mattlgroff/people-api/internal/repositories"
	"github.com/mattlgroff/people-api/internal/services"
	"github.com/mattlgroff/people-api/pkg/config"
	"github.com/mattlgroff/people-api/pkg/database"
	"github.com/mattlgroff/people-api/pkg/logger"
)

// Seeds the database with a demo person and two comments. Running it again
// is a no-op: the seed person is recognized by their email.
func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logging
	logger.Init()

	// Initialize database
	db, err := database.Open(config.AppConfig.Database.Path)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	personService := services.NewPersonService(repositories.NewPersonRepository(db))
	commentService := services.NewCommentService(repositories.NewCommentRepository(db))

	exists, err := personService.PersonExistsByEmail("matt@umbrage.com")
	if err != nil {
		logger.Fatalf("Failed to check for existing seed data: %v", err)
	}
	if exists {
		logger.Infof("Seed data already present, nothing to do")
		return
	}

	matt, err := personService.CreatePerson(models.NewPerson("Matt", "Groff", "matt@umbrage.com", "Director of Engineering", nil))
	if err != nil {
		logger.Fatalf("Failed to seed person: %v", err)
	}

	for _, text := range []string{
		"This is a comment from Matt Groff",
		"This is another comment from Matt Groff",
	} {
		if _, err := commentService.CreateComment(models.NewComment(text, matt.ID)); err != nil {
			logger.Fatalf("Failed to seed comment: %v", err)
		}
	}

	logger.WithField("person_id", matt.ID).Info("Seeded database")
}
