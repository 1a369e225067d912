package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattlgroff/people-api/internal/models"
)

func TestCreateComment(t *testing.T) {
	people, comments := testSetup(t)

	person, err := people.CreatePerson(models.NewPerson("Matt", "Groff", "matt@umbrage.com", "Director of Engineering", nil))
	require.NoError(t, err)

	created, err := comments.CreateComment(models.NewComment("This is a comment from Matt Groff", person.ID))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "This is a comment from Matt Groff", created.Comment)
	assert.Equal(t, person.ID, created.PersonID)
	assert.False(t, created.CreatedAt.IsZero())

	// A created comment is immediately findable and identical.
	found, err := comments.GetComment(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreateCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantErr error
	}{
		{
			name:    "missing comment text",
			comment: "",
			wantErr: models.ErrCommentRequired,
		},
		{
			name:    "whitespace comment text",
			comment: "   ",
			wantErr: models.ErrCommentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, comments := testSetup(t)

			person, err := people.CreatePerson(models.NewPerson("Matt", "Groff", "matt@umbrage.com", "Director of Engineering", nil))
			require.NoError(t, err)

			created, err := comments.CreateComment(models.NewComment(tt.comment, person.ID))
			assert.Nil(t, created)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestCreateCommentMissingPersonID(t *testing.T) {
	_, comments := testSetup(t)

	created, err := comments.CreateComment(models.NewComment("some comment", ""))
	assert.Nil(t, created)
	assert.ErrorIs(t, err, models.ErrPersonIDRequired)
}

func TestCreateCommentUnknownPerson(t *testing.T) {
	_, comments := testSetup(t)

	created, err := comments.CreateComment(models.NewComment("orphan comment", "no-such-person"))
	assert.Nil(t, created)
	assert.True(t, models.IsNotFound(err))

	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "person", notFound.Resource)
	assert.Equal(t, "no-such-person", notFound.ID)

	// The failed create must not leave anything behind.
	all, err := comments.ListComments()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetCommentNotFound(t *testing.T) {
	_, comments := testSetup(t)

	found, err := comments.GetComment("no-such-id")
	assert.Nil(t, found)
	assert.True(t, models.IsNotFound(err))
	assert.Contains(t, err.Error(), "comment")
}

func TestListComments(t *testing.T) {
	people, comments := testSetup(t)

	all, err := comments.ListComments()
	require.NoError(t, err)
	assert.Empty(t, all)

	person, err := people.CreatePerson(models.NewPerson("Matt", "Groff", "matt@umbrage.com", "Director of Engineering", nil))
	require.NoError(t, err)

	texts := []string{"This is a comment from Matt Groff", "This is another comment from Matt Groff"}
	for _, text := range texts {
		_, err := comments.CreateComment(models.NewComment(text, person.ID))
		require.NoError(t, err)
	}

	all, err = comments.ListComments()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListCommentsForPerson(t *testing.T) {
	people, comments := testSetup(t)

	matt, err := people.CreatePerson(models.NewPerson("Matt", "Groff", "matt@umbrage.com", "Director of Engineering", nil))
	require.NoError(t, err)
	ada, err := people.CreatePerson(models.NewPerson("Ada", "Lovelace", "ada@example.com", "Engineer", nil))
	require.NoError(t, err)

	_, err = comments.CreateComment(models.NewComment("from matt", matt.ID))
	require.NoError(t, err)
	_, err = comments.CreateComment(models.NewComment("from ada", ada.ID))
	require.NoError(t, err)

	mattComments, err := comments.ListCommentsForPerson(matt.ID)
	require.NoError(t, err)
	require.Len(t, mattComments, 1)
	assert.Equal(t, "from matt", mattComments[0].Comment)

	// A person with no comments gets an empty list, not an error.
	grace, err := people.CreatePerson(models.NewPerson("Grace", "Hopper", "grace@example.com", "Admiral", nil))
	require.NoError(t, err)

	graceComments, err := comments.ListCommentsForPerson(grace.ID)
	require.NoError(t, err)
	assert.Empty(t, graceComments)
}
