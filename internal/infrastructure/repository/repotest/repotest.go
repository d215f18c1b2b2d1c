// Package repotest opens throwaway SQLite databases for repository and
// service tests.
package repotest

import (
	"context"
	"fmt"
	"testing"

	"github.com/waste3d/course-provider/internal/domain"
	"github.com/waste3d/course-provider/internal/infrastructure/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSessions returns migrated sessions over a private in-memory database.
func NewSessions(t *testing.T) *repository.Sessions {
	t.Helper()

	sessions := repository.NewSessions(OpenDB(t))
	require.NoError(t, sessions.Migrate(context.Background()))
	return sessions
}

// OpenDB opens a private in-memory database without migrating it. Tests use
// it when they need to hook gorm callbacks.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Course returns a fully populated course with the given id.
func Course(id string) domain.Course {
	return domain.Course{
		ID:             id,
		ImageURI:       "https://cdn.example.com/" + id + ".png",
		ImageHeaderURI: "https://cdn.example.com/" + id + "-header.png",
		IsBestSeller:   true,
		IsDigital:      true,
		Categories:     []string{"Programming", "Go"},
		Title:          "Fullstack Go Developer",
		Subtitle:       "From basics to deploy",
		StarRating:     4.5,
		Reviews:        1200,
		LikesPercent:   94,
		Likes:          4200,
		Duration:       "45 hours",
		Authors:        []domain.Author{{Name: "Albert Flores"}, {Name: "Jenny Wilson"}},
		Prices:         &domain.Prices{Currency: "USD", Price: 49.99, Discount: 10},
		Content: &domain.Content{
			Description: "Build and ship web services.",
			Includes:    []string{"Certificate", "Lifetime access"},
			ProgramDetails: []domain.ProgramDetailItem{
				{ID: 1, Title: "Intro", Description: "Tooling and setup"},
				{ID: 2, Title: "HTTP", Description: "Routers and middleware"},
			},
		},
	}
}
