package repository

import "time"

// CourseGorm is the persisted course row. Categories and Authors are stored
// as JSON text so that NULL (absent) and [] (empty) stay distinguishable.
type CourseGorm struct {
	ID             string `gorm:"primaryKey;size:64"`
	ImageURI       string
	ImageHeaderURI string
	IsBestSeller   bool
	IsDigital      bool
	Categories     []string `gorm:"type:text;serializer:json"`
	Title          string   `gorm:"index"`
	Subtitle       string
	StarRating     float64
	Reviews        int
	LikesPercent   int
	Likes          int
	Duration       string
	Authors        []AuthorGorm `gorm:"type:text;serializer:json"`

	Prices  *PricesGorm  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`
	Content *ContentGorm `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CourseGorm) TableName() string {
	return "courses"
}

type AuthorGorm struct {
	Name string `json:"name"`
}

type PricesGorm struct {
	ID       uint   `gorm:"primaryKey"`
	CourseID string `gorm:"size:64;uniqueIndex"`
	Currency string
	Price    float64
	Discount float64
}

func (PricesGorm) TableName() string {
	return "course_prices"
}

type ContentGorm struct {
	ID             uint   `gorm:"primaryKey"`
	CourseID       string `gorm:"size:64;uniqueIndex"`
	Description    string
	Includes       []string                `gorm:"type:text;serializer:json"`
	ProgramDetails []ProgramDetailItemGorm `gorm:"type:text;serializer:json"`
}

func (ContentGorm) TableName() string {
	return "course_contents"
}

type ProgramDetailItemGorm struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Models lists every table the repository needs, in migration order.
func Models() []any {
	return []any{&CourseGorm{}, &PricesGorm{}, &ContentGorm{}}
}
