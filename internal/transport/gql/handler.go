package gql

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/waste3d/course-provider/internal/domain"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/pkg/errors"
)

//go:embed schema.graphql
var Schema string

// CourseService is what the resolvers call into.
type CourseService interface {
	CreateCourse(ctx context.Context, req domain.CourseCreateRequest) (*domain.Course, error)
	GetCourseByID(ctx context.Context, id string) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, req domain.CourseUpdateRequest) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)
}

// ParseSchema binds the course schema to resolvers backed by svc.
func ParseSchema(svc CourseService) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(Schema, &Resolver{courses: svc},
		graphql.MaxDepth(10),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse graphql schema")
	}
	return schema, nil
}

// NewHandler returns the executor that serves GraphQL over HTTP POST.
func NewHandler(svc CourseService) (http.Handler, error) {
	schema, err := ParseSchema(svc)
	if err != nil {
		return nil, err
	}
	return &relay.Handler{Schema: schema}, nil
}
