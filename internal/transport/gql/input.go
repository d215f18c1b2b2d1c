package gql

import (
	"github.com/waste3d/course-provider/internal/domain"

	"github.com/graph-gophers/graphql-go"
)

type authorInput struct {
	Name string
}

type pricesInput struct {
	Currency string
	Price    float64
	Discount float64
}

type programDetailItemInput struct {
	ID          int32
	Title       string
	Description string
}

type contentInput struct {
	Description    string
	Includes       *[]string
	ProgramDetails *[]programDetailItemInput
}

type courseCreateInput struct {
	ID             *graphql.ID
	ImageURI       string
	ImageHeaderURI string
	IsBestSeller   bool
	IsDigital      bool
	Categories     *[]string
	Title          string
	Subtitle       string
	StarRating     float64
	Reviews        int32
	LikesPercent   int32
	Likes          int32
	Duration       string
	Authors        *[]authorInput
	Prices         *pricesInput
	Content        *contentInput
}

type courseUpdateInput struct {
	ID             graphql.ID
	ImageURI       string
	ImageHeaderURI string
	IsBestSeller   bool
	IsDigital      bool
	Categories     *[]string
	Title          string
	Subtitle       string
	StarRating     float64
	Reviews        int32
	LikesPercent   int32
	Likes          int32
	Duration       string
	Authors        *[]authorInput
	Prices         *pricesInput
	Content        *contentInput
}

func (in courseCreateInput) toRequest() domain.CourseCreateRequest {
	var id string
	if in.ID != nil {
		id = string(*in.ID)
	}
	return domain.CourseCreateRequest{
		ID:             id,
		ImageURI:       in.ImageURI,
		ImageHeaderURI: in.ImageHeaderURI,
		IsBestSeller:   in.IsBestSeller,
		IsDigital:      in.IsDigital,
		Categories:     derefStrings(in.Categories),
		Title:          in.Title,
		Subtitle:       in.Subtitle,
		StarRating:     in.StarRating,
		Reviews:        int(in.Reviews),
		LikesPercent:   int(in.LikesPercent),
		Likes:          int(in.Likes),
		Duration:       in.Duration,
		Authors:        toAuthors(in.Authors),
		Prices:         in.Prices.toDomain(),
		Content:        in.Content.toDomain(),
	}
}

func (in courseUpdateInput) toRequest() domain.CourseUpdateRequest {
	return domain.CourseUpdateRequest{
		ID:             string(in.ID),
		ImageURI:       in.ImageURI,
		ImageHeaderURI: in.ImageHeaderURI,
		IsBestSeller:   in.IsBestSeller,
		IsDigital:      in.IsDigital,
		Categories:     derefStrings(in.Categories),
		Title:          in.Title,
		Subtitle:       in.Subtitle,
		StarRating:     in.StarRating,
		Reviews:        int(in.Reviews),
		LikesPercent:   int(in.LikesPercent),
		Likes:          int(in.Likes),
		Duration:       in.Duration,
		Authors:        toAuthors(in.Authors),
		Prices:         in.Prices.toDomain(),
		Content:        in.Content.toDomain(),
	}
}

func (in *pricesInput) toDomain() *domain.Prices {
	if in == nil {
		return nil
	}
	return &domain.Prices{Currency: in.Currency, Price: in.Price, Discount: in.Discount}
}

func (in *contentInput) toDomain() *domain.Content {
	if in == nil {
		return nil
	}
	content := &domain.Content{
		Description: in.Description,
		Includes:    derefStrings(in.Includes),
	}
	if in.ProgramDetails != nil {
		content.ProgramDetails = make([]domain.ProgramDetailItem, 0, len(*in.ProgramDetails))
		for _, pd := range *in.ProgramDetails {
			content.ProgramDetails = append(content.ProgramDetails, domain.ProgramDetailItem{
				ID:          int(pd.ID),
				Title:       pd.Title,
				Description: pd.Description,
			})
		}
	}
	return content
}

func toAuthors(in *[]authorInput) []domain.Author {
	if in == nil {
		return nil
	}
	out := make([]domain.Author, 0, len(*in))
	for _, a := range *in {
		out = append(out, domain.Author{Name: a.Name})
	}
	return out
}

// derefStrings keeps the difference between an omitted list (nil) and an
// empty one.
func derefStrings(in *[]string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(*in))
	copy(out, *in)
	return out
}
