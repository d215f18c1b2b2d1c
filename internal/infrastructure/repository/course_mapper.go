package repository

import (
	"slices"

	"github.com/waste3d/course-provider/internal/domain"
)

func toGormCourse(c *domain.Course) *CourseGorm {
	return &CourseGorm{
		ID:             c.ID,
		ImageURI:       c.ImageURI,
		ImageHeaderURI: c.ImageHeaderURI,
		IsBestSeller:   c.IsBestSeller,
		IsDigital:      c.IsDigital,
		Categories:     slices.Clone(c.Categories),
		Title:          c.Title,
		Subtitle:       c.Subtitle,
		StarRating:     c.StarRating,
		Reviews:        c.Reviews,
		LikesPercent:   c.LikesPercent,
		Likes:          c.Likes,
		Duration:       c.Duration,
		Authors:        toGormAuthors(c.Authors),
		Prices:         toGormPrices(c.ID, c.Prices),
		Content:        toGormContent(c.ID, c.Content),
	}
}

func toDomainCourse(c *CourseGorm) domain.Course {
	return domain.Course{
		ID:             c.ID,
		ImageURI:       c.ImageURI,
		ImageHeaderURI: c.ImageHeaderURI,
		IsBestSeller:   c.IsBestSeller,
		IsDigital:      c.IsDigital,
		Categories:     slices.Clone(c.Categories),
		Title:          c.Title,
		Subtitle:       c.Subtitle,
		StarRating:     c.StarRating,
		Reviews:        c.Reviews,
		LikesPercent:   c.LikesPercent,
		Likes:          c.Likes,
		Duration:       c.Duration,
		Authors:        toDomainAuthors(c.Authors),
		Prices:         toDomainPrices(c.Prices),
		Content:        toDomainContent(c.Content),
	}
}

func toGormAuthors(authors []domain.Author) []AuthorGorm {
	if authors == nil {
		return nil
	}
	out := make([]AuthorGorm, 0, len(authors))
	for _, a := range authors {
		out = append(out, AuthorGorm{Name: a.Name})
	}
	return out
}

func toDomainAuthors(authors []AuthorGorm) []domain.Author {
	if authors == nil {
		return nil
	}
	out := make([]domain.Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, domain.Author{Name: a.Name})
	}
	return out
}

func toGormPrices(courseID string, p *domain.Prices) *PricesGorm {
	if p == nil {
		return nil
	}
	return &PricesGorm{
		CourseID: courseID,
		Currency: p.Currency,
		Price:    p.Price,
		Discount: p.Discount,
	}
}

func toDomainPrices(p *PricesGorm) *domain.Prices {
	if p == nil {
		return nil
	}
	return &domain.Prices{
		Currency: p.Currency,
		Price:    p.Price,
		Discount: p.Discount,
	}
}

func toGormContent(courseID string, c *domain.Content) *ContentGorm {
	if c == nil {
		return nil
	}
	content := &ContentGorm{
		CourseID:    courseID,
		Description: c.Description,
		Includes:    slices.Clone(c.Includes),
	}
	if c.ProgramDetails != nil {
		content.ProgramDetails = make([]ProgramDetailItemGorm, 0, len(c.ProgramDetails))
		for _, pd := range c.ProgramDetails {
			content.ProgramDetails = append(content.ProgramDetails, ProgramDetailItemGorm{
				ID:          pd.ID,
				Title:       pd.Title,
				Description: pd.Description,
			})
		}
	}
	return content
}

func toDomainContent(c *ContentGorm) *domain.Content {
	if c == nil {
		return nil
	}
	content := &domain.Content{
		Description: c.Description,
		Includes:    slices.Clone(c.Includes),
	}
	if c.ProgramDetails != nil {
		content.ProgramDetails = make([]domain.ProgramDetailItem, 0, len(c.ProgramDetails))
		for _, pd := range c.ProgramDetails {
			content.ProgramDetails = append(content.ProgramDetails, domain.ProgramDetailItem{
				ID:          pd.ID,
				Title:       pd.Title,
				Description: pd.Description,
			})
		}
	}
	return content
}
