//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	MediaRepo     media.MediaRepository
	NewsRepo      news.ArticleRepository
	EventRepo     events.EventRepository
	AlbumRepo     gallery.AlbumRepository
	ComplaintRepo complaints.ComplaintRepository
	VoterRepo     voters.VoterRepository
	ProductRepo   store.ProductRepository
	OrderRepo     store.OrderRepository
	Transactor    store.Transactor
	SitemapRepo   seo.SitemapRepository
	StatsRepo     dashboard.StatsRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	tc := &TestContext{DB: db}
	tc.MediaRepo, err = NewGormMediaRepository(db, log)
	require.NoError(t, err)
	tc.NewsRepo, err = NewGormNewsRepository(db, log)
	require.NoError(t, err)
	tc.EventRepo, err = NewGormEventRepository(db, log)
	require.NoError(t, err)
	tc.AlbumRepo, err = NewGormAlbumRepository(db, log)
	require.NoError(t, err)
	tc.ComplaintRepo, err = NewGormComplaintRepository(db, log)
	require.NoError(t, err)
	tc.VoterRepo, err = NewGormVoterRepository(db, log)
	require.NoError(t, err)
	tc.ProductRepo, err = NewGormProductRepository(db, log)
	require.NoError(t, err)
	tc.OrderRepo, err = NewGormOrderRepository(db, log)
	require.NoError(t, err)
	tc.Transactor, err = NewGormTransactor(db, log)
	require.NoError(t, err)
	tc.SitemapRepo, err = NewGormSitemapRepository(db)
	require.NoError(t, err)
	tc.StatsRepo, err = NewGormStatsRepository(db)
	require.NoError(t, err)

	return tc
}

// CreateTestMediaAsset creates a media asset with default values
func CreateTestMediaAsset(t *testing.T, purpose string) *media.MediaAsset {
	t.Helper()

	id := uuid.NewString()
	key := purpose + "/2026/01/" + id + ".png"
	return &media.MediaAsset{
		ID:          id,
		Key:         key,
		URL:         "https://cdn.example.com/" + key,
		Purpose:     purpose,
		FileName:    "photo.png",
		ContentType: "image/png",
		Size:        2048,
	}
}

// CreateTestArticle creates a news article with the given slug and status
func CreateTestArticle(t *testing.T, slug, status string) *news.Article {
	t.Helper()

	article := &news.Article{
		ID:      uuid.NewString(),
		Slug:    slug,
		TitleEn: "Road repair in ward " + slug,
		Status:  status,
	}
	if status == news.StatusPublished {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}
	return article
}

// CreateTestEvent creates a published event starting at startsAt
func CreateTestEvent(t *testing.T, slug string, startsAt time.Time) *events.Event {
	t.Helper()

	return &events.Event{
		ID:       uuid.NewString(),
		Slug:     slug,
		TitleEn:  "Rally " + slug,
		StartsAt: startsAt,
		Status:   events.StatusPublished,
	}
}

// CreateTestProduct creates an active product with the given stock
func CreateTestProduct(t *testing.T, slug string, stock int) *store.Product {
	t.Helper()

	return &store.Product{
		ID:     uuid.NewString(),
		Slug:   slug,
		NameEn: "Campaign T-shirt",
		Price:  35000,
		Stock:  stock,
		Images: []string{},
		Status: store.ProductActive,
	}
}

// CreateTestVoter creates a voter with the given number and name
func CreateTestVoter(t *testing.T, voterNumber, name string) *voters.Voter {
	t.Helper()

	return &voters.Voter{
		ID:          uuid.NewString(),
		VoterNumber: voterNumber,
		NameEn:      name,
		Ward:        "7",
		Union:       "Sadar",
	}
}
