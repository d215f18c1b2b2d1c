package gql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
)

type Resolver struct {
	courses CourseService
}

func (r *Resolver) Course(ctx context.Context, args struct{ ID graphql.ID }) (*courseResolver, error) {
	course, err := r.courses.GetCourseByID(ctx, string(args.ID))
	if err != nil || course == nil {
		return nil, err
	}
	return &courseResolver{c: *course}, nil
}

func (r *Resolver) Courses(ctx context.Context) ([]*courseResolver, error) {
	courses, err := r.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*courseResolver, 0, len(courses))
	for _, c := range courses {
		out = append(out, &courseResolver{c: c})
	}
	return out, nil
}

func (r *Resolver) CreateCourse(ctx context.Context, args struct{ Input courseCreateInput }) (*courseResolver, error) {
	course, err := r.courses.CreateCourse(ctx, args.Input.toRequest())
	if err != nil {
		return nil, err
	}
	return &courseResolver{c: *course}, nil
}

func (r *Resolver) UpdateCourse(ctx context.Context, args struct{ Input courseUpdateInput }) (*courseResolver, error) {
	course, err := r.courses.UpdateCourse(ctx, args.Input.toRequest())
	if err != nil || course == nil {
		return nil, err
	}
	return &courseResolver{c: *course}, nil
}

func (r *Resolver) DeleteCourse(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.courses.DeleteCourse(ctx, string(args.ID))
}
