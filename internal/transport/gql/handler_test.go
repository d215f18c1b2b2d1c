package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waste3d/course-provider/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	courses map[string]domain.Course
	err     error

	lastCreate domain.CourseCreateRequest
	lastUpdate domain.CourseUpdateRequest
}

func newFakeService(courses ...domain.Course) *fakeService {
	s := &fakeService{courses: map[string]domain.Course{}}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return s
}

func (s *fakeService) CreateCourse(_ context.Context, req domain.CourseCreateRequest) (*domain.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastCreate = req
	id := req.ID
	if id == "" {
		id = "generated"
	}
	c := domain.NewCourse(id, req)
	s.courses[id] = c
	return &c, nil
}

func (s *fakeService) GetCourseByID(_ context.Context, id string) (*domain.Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, s.err
	}
	return &c, nil
}

func (s *fakeService) ListCourses(context.Context) ([]domain.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeService) UpdateCourse(_ context.Context, req domain.CourseUpdateRequest) (*domain.Course, error) {
	s.lastUpdate = req
	c, ok := s.courses[req.ID]
	if !ok {
		return nil, nil
	}
	req.Apply(&c)
	s.courses[req.ID] = c
	return &c, nil
}

func (s *fakeService) DeleteCourse(_ context.Context, id string) (bool, error) {
	if _, ok := s.courses[id]; !ok {
		return false, nil
	}
	delete(s.courses, id)
	return true, nil
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func execute(t *testing.T, svc CourseService, query string, variables map[string]any) gqlResponse {
	t.Helper()
	h, err := NewHandler(svc)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func sample() domain.Course {
	return domain.Course{
		ID:         "go-101",
		Title:      "Go",
		Categories: []string{"Programming"},
		StarRating: 4.5,
		Reviews:    10,
		Authors:    []domain.Author{{Name: "Ann"}},
		Prices:     &domain.Prices{Currency: "USD", Price: 20, Discount: 2},
		Content: &domain.Content{
			Description:    "Learn Go",
			ProgramDetails: []domain.ProgramDetailItem{{ID: 1, Title: "Intro", Description: "Setup"}},
		},
	}
}

func TestParseSchema(t *testing.T) {
	_, err := ParseSchema(newFakeService())
	require.NoError(t, err)
}

func TestQueryCourse(t *testing.T) {
	res := execute(t, newFakeService(sample()), `
		query($id: ID!) {
			course(id: $id) {
				id title categories starRating reviews
				authors { name }
				prices { currency price discount }
				content { description includes programDetails { id title description } }
			}
		}`, map[string]any{"id": "go-101"})
	require.Empty(t, res.Errors)

	assert.JSONEq(t, `{"course": {
		"id": "go-101", "title": "Go", "categories": ["Programming"], "starRating": 4.5, "reviews": 10,
		"authors": [{"name": "Ann"}],
		"prices": {"currency": "USD", "price": 20, "discount": 2},
		"content": {"description": "Learn Go", "includes": null,
			"programDetails": [{"id": 1, "title": "Intro", "description": "Setup"}]}
	}}`, string(res.Data))
}

func TestQueryCourseMissing(t *testing.T) {
	res := execute(t, newFakeService(), `{ course(id: "nope") { id } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"course": null}`, string(res.Data))
}

func TestQueryCourses(t *testing.T) {
	other := sample()
	other.ID = "go-201"
	other.Authors = nil

	res := execute(t, newFakeService(sample(), other), `{ courses { id authors { name } } }`, nil)
	require.Empty(t, res.Errors)

	var data struct {
		Courses []struct {
			ID      string            `json:"id"`
			Authors []json.RawMessage `json:"authors"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	require.Len(t, data.Courses, 2)
	for _, c := range data.Courses {
		if c.ID == "go-201" {
			assert.Nil(t, c.Authors)
		} else {
			assert.Len(t, c.Authors, 1)
		}
	}
}

func TestCreateCourse(t *testing.T) {
	svc := newFakeService()
	res := execute(t, svc, `
		mutation($input: CourseCreateInput!) {
			createCourse(input: $input) { id title likes prices { price } }
		}`, map[string]any{"input": map[string]any{
		"imageUri": "i", "imageHeaderUri": "h", "isBestSeller": true, "isDigital": false,
		"title": "New", "subtitle": "s", "starRating": 3.5, "reviews": 1, "likesPercent": 90,
		"likes": 12, "duration": "2h",
		"categories": []string{},
		"authors":    []map[string]any{{"name": "Bo"}},
		"prices":     map[string]any{"currency": "SEK", "price": 99.5, "discount": 0},
	}})
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"createCourse": {"id": "generated", "title": "New", "likes": 12, "prices": {"price": 99.5}}}`, string(res.Data))

	req := svc.lastCreate
	assert.Empty(t, req.ID)
	assert.NotNil(t, req.Categories)
	assert.Empty(t, req.Categories)
	assert.Equal(t, []domain.Author{{Name: "Bo"}}, req.Authors)
	assert.Nil(t, req.Content)
}

func TestUpdateCourse(t *testing.T) {
	svc := newFakeService(sample())
	update := `
		mutation($input: CourseUpdateInput!) {
			updateCourse(input: $input) { id title authors { name } prices { price } content { description } }
		}`
	input := func(id string) map[string]any {
		return map[string]any{
			"id": id, "imageUri": "", "imageHeaderUri": "", "isBestSeller": false, "isDigital": true,
			"title": "Go 2", "subtitle": "", "starRating": 5, "reviews": 0, "likesPercent": 0,
			"likes": 0, "duration": "",
			"content": map[string]any{"description": "New", "programDetails": []map[string]any{}},
		}
	}

	res := execute(t, svc, update, map[string]any{"input": input("go-101")})
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"updateCourse": {"id": "go-101", "title": "Go 2", "authors": null, "prices": null,
		"content": {"description": "New"}}}`, string(res.Data))

	assert.Nil(t, svc.lastUpdate.Authors)
	assert.Nil(t, svc.lastUpdate.Prices)
	assert.NotNil(t, svc.lastUpdate.Content.ProgramDetails)

	res = execute(t, svc, update, map[string]any{"input": input("nope")})
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"updateCourse": null}`, string(res.Data))
}

func TestDeleteCourse(t *testing.T) {
	svc := newFakeService(sample())

	res := execute(t, svc, `mutation { deleteCourse(id: "go-101") }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"deleteCourse": true}`, string(res.Data))

	res = execute(t, svc, `mutation { deleteCourse(id: "go-101") }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"deleteCourse": false}`, string(res.Data))
}

func TestServiceErrorBecomesGraphQLError(t *testing.T) {
	svc := newFakeService()
	svc.err = errors.New("database is down")

	res := execute(t, svc, `{ courses { id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "database is down")
}

func TestQueryCourseClampsLargeCounters(t *testing.T) {
	c := sample()
	c.Reviews = math.MaxInt
	c.Likes = math.MinInt
	c.LikesPercent = 100
	c.Content.ProgramDetails[0].ID = math.MaxInt

	res := execute(t, newFakeService(c), `{ course(id: "go-101") { reviews likes likesPercent content { programDetails { id } } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"course": {"reviews": 2147483647, "likes": -2147483648, "likesPercent": 100,
		"content": {"programDetails": [{"id": 2147483647}]}}}`, string(res.Data))
}

func TestClampInt32(t *testing.T) {
	assert.Equal(t, int32(7), clampInt32(7))
	assert.Equal(t, int32(math.MaxInt32), clampInt32(math.MaxInt))
	assert.Equal(t, int32(math.MinInt32), clampInt32(math.MinInt))
}
