package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/mattlgroff/people-api/internal/models"
	"github.com/mattlgroff/people-api/internal/services"
)

// Resolver binds GraphQL fields to the service layer. Every field in the
// schema names one of its methods (or an accessor closure) explicitly.
type Resolver struct {
	personService  *services.PersonService
	commentService *services.CommentService
}

func NewResolver(personService *services.PersonService, commentService *services.CommentService) *Resolver {
	return &Resolver{
		personService:  personService,
		commentService: commentService,
	}
}

// ResolvePeople resolves the root "people" query
func (r *Resolver) ResolvePeople(p graphql.ResolveParams) (interface{}, error) {
	people, err := r.personService.ListPeople()
	if err != nil {
		return nil, resolverError(err)
	}

	// The field is a non-null list, so an empty result is [] rather than null.
	if people == nil {
		people = []*models.Person{}
	}
	return people, nil
}

// ResolvePerson resolves the root "person" query
func (r *Resolver) ResolvePerson(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	person, err := r.personService.GetPerson(id)
	if err != nil {
		return nil, resolverError(err)
	}
	return person, nil
}

// ResolveComments resolves the root "comments" query
func (r *Resolver) ResolveComments(p graphql.ResolveParams) (interface{}, error) {
	comments, err := r.commentService.ListComments()
	if err != nil {
		return nil, resolverError(err)
	}

	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// ResolvePersonComments resolves the "comments" field of a Person
func (r *Resolver) ResolvePersonComments(p graphql.ResolveParams) (interface{}, error) {
	person, err := personSource(p)
	if err != nil {
		return nil, err
	}

	comments, err := r.commentService.ListCommentsForPerson(person.ID)
	if err != nil {
		return nil, resolverError(err)
	}

	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// ResolveCommentPerson resolves the "person" field of a Comment
func (r *Resolver) ResolveCommentPerson(p graphql.ResolveParams) (interface{}, error) {
	comment, err := commentSource(p)
	if err != nil {
		return nil, err
	}

	person, err := r.personService.GetPerson(comment.PersonID)
	if err != nil {
		return nil, resolverError(err)
	}
	return person, nil
}

// ResolveAddPerson resolves the "addPerson" mutation
func (r *Resolver) ResolveAddPerson(p graphql.ResolveParams) (interface{}, error) {
	firstName, _ := p.Args["firstName"].(string)
	lastName, _ := p.Args["lastName"].(string)
	email, _ := p.Args["email"].(string)
	jobTitle, _ := p.Args["jobTitle"].(string)

	var avatar *string
	if v, ok := p.Args["avatar"].(string); ok {
		avatar = &v
	}

	person, err := r.personService.CreatePerson(models.NewPerson(firstName, lastName, email, jobTitle, avatar))
	if err != nil {
		return nil, resolverError(err)
	}
	return person, nil
}

// ResolveAddComment resolves the "addComment" mutation
func (r *Resolver) ResolveAddComment(p graphql.ResolveParams) (interface{}, error) {
	text, _ := p.Args["comment"].(string)
	personID, _ := p.Args["personId"].(string)

	comment, err := r.commentService.CreateComment(models.NewComment(text, personID))
	if err != nil {
		return nil, resolverError(err)
	}
	return comment, nil
}

func personSource(p graphql.ResolveParams) (*models.Person, error) {
	person, ok := p.Source.(*models.Person)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T for Person field %q", p.Source, p.Info.FieldName)
	}
	return person, nil
}

func commentSource(p graphql.ResolveParams) (*models.Comment, error) {
	comment, ok := p.Source.(*models.Comment)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T for Comment field %q", p.Source, p.Info.FieldName)
	}
	return comment, nil
}
