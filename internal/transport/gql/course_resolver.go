package gql

import (
	"math"

	"github.com/waste3d/course-provider/internal/domain"

	"github.com/graph-gophers/graphql-go"
)

type courseResolver struct {
	c domain.Course
}

func (r *courseResolver) ID() graphql.ID         { return graphql.ID(r.c.ID) }
func (r *courseResolver) ImageURI() string       { return r.c.ImageURI }
func (r *courseResolver) ImageHeaderURI() string { return r.c.ImageHeaderURI }
func (r *courseResolver) IsBestSeller() bool     { return r.c.IsBestSeller }
func (r *courseResolver) IsDigital() bool        { return r.c.IsDigital }
func (r *courseResolver) Title() string          { return r.c.Title }
func (r *courseResolver) Subtitle() string       { return r.c.Subtitle }
func (r *courseResolver) StarRating() float64    { return r.c.StarRating }
func (r *courseResolver) Reviews() int32         { return clampInt32(r.c.Reviews) }
func (r *courseResolver) LikesPercent() int32    { return clampInt32(r.c.LikesPercent) }
func (r *courseResolver) Likes() int32           { return clampInt32(r.c.Likes) }
func (r *courseResolver) Duration() string       { return r.c.Duration }

func (r *courseResolver) Categories() *[]string {
	return optionalStrings(r.c.Categories)
}

func (r *courseResolver) Authors() *[]*authorResolver {
	if r.c.Authors == nil {
		return nil
	}
	out := make([]*authorResolver, 0, len(r.c.Authors))
	for _, a := range r.c.Authors {
		out = append(out, &authorResolver{a: a})
	}
	return &out
}

func (r *courseResolver) Prices() *pricesResolver {
	if r.c.Prices == nil {
		return nil
	}
	return &pricesResolver{p: *r.c.Prices}
}

func (r *courseResolver) Content() *contentResolver {
	if r.c.Content == nil {
		return nil
	}
	return &contentResolver{c: *r.c.Content}
}

type authorResolver struct {
	a domain.Author
}

func (r *authorResolver) Name() string { return r.a.Name }

type pricesResolver struct {
	p domain.Prices
}

func (r *pricesResolver) Currency() string  { return r.p.Currency }
func (r *pricesResolver) Price() float64    { return r.p.Price }
func (r *pricesResolver) Discount() float64 { return r.p.Discount }

type contentResolver struct {
	c domain.Content
}

func (r *contentResolver) Description() string { return r.c.Description }

func (r *contentResolver) Includes() *[]string {
	return optionalStrings(r.c.Includes)
}

func (r *contentResolver) ProgramDetails() *[]*programDetailItemResolver {
	if r.c.ProgramDetails == nil {
		return nil
	}
	out := make([]*programDetailItemResolver, 0, len(r.c.ProgramDetails))
	for _, pd := range r.c.ProgramDetails {
		out = append(out, &programDetailItemResolver{pd: pd})
	}
	return &out
}

type programDetailItemResolver struct {
	pd domain.ProgramDetailItem
}

func (r *programDetailItemResolver) ID() int32           { return clampInt32(r.pd.ID) }
func (r *programDetailItemResolver) Title() string       { return r.pd.Title }
func (r *programDetailItemResolver) Description() string { return r.pd.Description }

func optionalStrings(s []string) *[]string {
	if s == nil {
		return nil
	}
	out := append([]string(nil), s...)
	return &out
}

// clampInt32 saturates n to the GraphQL Int range instead of wrapping.
func clampInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}
