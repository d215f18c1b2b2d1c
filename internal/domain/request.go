package domain

import "slices"

// CourseCreateRequest carries every field of a new course. ID may be empty,
// in which case the service generates one.
type CourseCreateRequest struct {
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

// CourseUpdateRequest replaces every mutable field of the course with the
// given ID. It is not a merge: nil Authors, Prices or Content clear them.
type CourseUpdateRequest struct {
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

// NewCourse builds a course from a create request with the given id.
func NewCourse(id string, req CourseCreateRequest) Course {
	return Course{
		ID:             id,
		ImageURI:       req.ImageURI,
		ImageHeaderURI: req.ImageHeaderURI,
		IsBestSeller:   req.IsBestSeller,
		IsDigital:      req.IsDigital,
		Categories:     slices.Clone(req.Categories),
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		StarRating:     req.StarRating,
		Reviews:        req.Reviews,
		LikesPercent:   req.LikesPercent,
		Likes:          req.Likes,
		Duration:       req.Duration,
		Authors:        slices.Clone(req.Authors),
		Prices:         clonePrices(req.Prices),
		Content:        cloneContent(req.Content),
	}
}

// Apply overwrites every mutable field of c from the request. The ID is kept.
func (req CourseUpdateRequest) Apply(c *Course) {
	c.ImageURI = req.ImageURI
	c.ImageHeaderURI = req.ImageHeaderURI
	c.IsBestSeller = req.IsBestSeller
	c.IsDigital = req.IsDigital
	c.Categories = slices.Clone(req.Categories)
	c.Title = req.Title
	c.Subtitle = req.Subtitle
	c.StarRating = req.StarRating
	c.Reviews = req.Reviews
	c.LikesPercent = req.LikesPercent
	c.Likes = req.Likes
	c.Duration = req.Duration
	c.Authors = slices.Clone(req.Authors)
	c.Prices = clonePrices(req.Prices)
	c.Content = cloneContent(req.Content)
}

func clonePrices(p *Prices) *Prices {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func cloneContent(c *Content) *Content {
	if c == nil {
		return nil
	}
	return &Content{
		Description:    c.Description,
		Includes:       slices.Clone(c.Includes),
		ProgramDetails: slices.Clone(c.ProgramDetails),
	}
}
