package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable GraphQL schema. It is constructed once at
// startup, never mutated afterwards, and safe for concurrent execution.
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	var personType *graphql.Object
	var commentType *graphql.Object

	// Person and Comment reference each other, so both use field thunks
	// that are only evaluated once the schema is assembled.
	personType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Person",
		Description: "A person who can leave comments.",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.ID, nil
					},
				},
				"firstName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.FirstName, nil
					},
				},
				"lastName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.LastName, nil
					},
				},
				"fullName": &graphql.Field{
					Type:        graphql.NewNonNull(graphql.String),
					Description: "First and last name joined with a space.",
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.FullName(), nil
					},
				},
				"email": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.Email, nil
					},
				},
				"jobTitle": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.JobTitle, nil
					},
				},
				"avatar": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						if person.Avatar == nil {
							return nil, nil
						}
						return *person.Avatar, nil
					},
				},
				"comments": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
					Resolve: resolver.ResolvePersonComments,
				},
				"createdAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.DateTime),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.CreatedAt, nil
					},
				},
				"updatedAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.DateTime),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						person, err := personSource(p)
						if err != nil {
							return nil, err
						}
						return person.UpdatedAt, nil
					},
				},
			}
		}),
	})

	commentType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Comment",
		Description: "A comment left by a person.",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, err := commentSource(p)
						if err != nil {
							return nil, err
						}
						return comment.ID, nil
					},
				},
				"comment": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, err := commentSource(p)
						if err != nil {
							return nil, err
						}
						return comment.Comment, nil
					},
				},
				"person": &graphql.Field{
					Type:    graphql.NewNonNull(personType),
					Resolve: resolver.ResolveCommentPerson,
				},
				"createdAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.DateTime),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, err := commentSource(p)
						if err != nil {
							return nil, err
						}
						return comment.CreatedAt, nil
					},
				},
				"updatedAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.DateTime),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, err := commentSource(p)
						if err != nil {
							return nil, err
						}
						return comment.UpdatedAt, nil
					},
				},
			}
		}),
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"people": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
				Description: "All people.",
				Resolve:     resolver.ResolvePeople,
			},
			"person": &graphql.Field{
				Type:        personType,
				Description: "A single person by ID.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.ResolvePerson,
			},
			"comments": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
				Description: "All comments.",
				Resolve:     resolver.ResolveComments,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addPerson": &graphql.Field{
				Type:        personType,
				Description: "Create a new person.",
				Args: graphql.FieldConfigArgument{
					"firstName": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"lastName": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"email": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"jobTitle": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"avatar": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: resolver.ResolveAddPerson,
			},
			"addComment": &graphql.Field{
				Type:        commentType,
				Description: "Create a new comment for an existing person.",
				Args: graphql.FieldConfigArgument{
					"comment": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"personId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.ResolveAddComment,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
