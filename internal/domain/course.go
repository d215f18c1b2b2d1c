package domain

import "errors"

// ErrCourseNotFound is returned by the store when no course has the requested id.
var ErrCourseNotFound = errors.New("course not found")

// Course is the catalog item exposed at the API boundary. Nil slices and nil
// pointers mean "absent" and are kept distinct from empty values.
type Course struct {
	ID             string
	ImageURI       string
	ImageHeaderURI string
	IsBestSeller   bool
	IsDigital      bool
	Categories     []string
	Title          string
	Subtitle       string
	StarRating     float64
	Reviews        int
	LikesPercent   int
	Likes          int
	Duration       string
	Authors        []Author
	Prices         *Prices
	Content        *Content
}

// Author is a course author as shown on the catalog page.
type Author struct {
	Name string
}

// Prices is the optional price tag of a course.
type Prices struct {
	Currency string
	Price    float64
	Discount float64
}

// Content describes what the course covers.
type Content struct {
	Description    string
	Includes       []string
	ProgramDetails []ProgramDetailItem
}

// ProgramDetailItem is one numbered entry of the course program.
type ProgramDetailItem struct {
	ID          int
	Title       string
	Description string
}
