//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsSqliteRepository_ListPublishedWithSearch(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	published := CreateTestArticle(t, "bridge-opening", news.StatusPublished)
	published.TitleEn = "Bridge opening at 100% capacity"
	require.NoError(t, ctx.NewsRepo.Create(context.Background(), published))
	require.NoError(t, ctx.NewsRepo.Create(context.Background(), CreateTestArticle(t, "draft-note", news.StatusDraft)))

	query := news.NewArticleQuery()
	query.Status = news.StatusPublished
	articles, total, err := ctx.NewsRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, articles, 1)
	assert.Equal(t, "bridge-opening", articles[0].Slug)

	query.Search = "100%"
	articles, _, err = ctx.NewsRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, articles, 1)

	query.Search = "1000%"
	articles, _, err = ctx.NewsRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestNewsSqliteRepository_IncrementViews(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	article := CreateTestArticle(t, "ward-meeting", news.StatusPublished)
	require.NoError(t, ctx.NewsRepo.Create(context.Background(), article))

	require.NoError(t, ctx.NewsRepo.IncrementViews(context.Background(), article.ID))
	require.NoError(t, ctx.NewsRepo.IncrementViews(context.Background(), article.ID))

	fetched, err := ctx.NewsRepo.GetBySlug(context.Background(), "ward-meeting")
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.ViewCount)

	err = ctx.NewsRepo.IncrementViews(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestNewsSqliteRepository_SoftDeleteKeepsSlugReserved(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	article := CreateTestArticle(t, "manifesto", news.StatusDraft)
	require.NoError(t, ctx.NewsRepo.Create(context.Background(), article))
	require.NoError(t, ctx.NewsRepo.DeleteByID(context.Background(), article.ID))

	_, err := ctx.NewsRepo.GetByID(context.Background(), article.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	exists, err := ctx.NewsRepo.SlugExists(context.Background(), "manifesto", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.NewsRepo.SlugExists(context.Background(), "manifesto", article.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEventSqliteRepository_ScopeWithMixedOffsets(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	dhaka := time.FixedZone("BST", 6*60*60)
	now := time.Now()

	require.NoError(t, ctx.EventRepo.Create(bg, CreateTestEvent(t, "future-utc", now.Add(2*time.Hour).UTC())))
	require.NoError(t, ctx.EventRepo.Create(bg, CreateTestEvent(t, "past-dhaka", now.Add(-2*time.Hour).In(dhaka))))
	require.NoError(t, ctx.EventRepo.Create(bg, CreateTestEvent(t, "future-dhaka", now.Add(time.Hour).In(dhaka))))

	slugs := func(list []*events.Event) []string {
		out := make([]string, 0, len(list))
		for _, e := range list {
			out = append(out, e.Slug)
		}
		return out
	}

	upcoming := events.NewEventQuery()
	upcoming.Scope = events.ScopeUpcoming
	upcoming.Now = now.In(dhaka)
	list, total, err := ctx.EventRepo.List(bg, upcoming)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"future-dhaka", "future-utc"}, slugs(list))

	past := events.NewEventQuery()
	past.Scope = events.ScopePast
	past.Now = now.In(dhaka)
	list, total, err = ctx.EventRepo.List(bg, past)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"past-dhaka"}, slugs(list))

	stored, err := ctx.EventRepo.GetBySlug(bg, "past-dhaka")
	require.NoError(t, err)
	assert.True(t, stored.StartsAt.Equal(now.Add(-2*time.Hour)))
}

func TestAlbumSqliteRepository_PhotosKeepSortOrder(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	album := &gallery.Album{
		ID:      uuid.NewString(),
		Slug:    "rally-2026",
		TitleEn: "Rally 2026",
		Status:  gallery.StatusPublished,
	}
	require.NoError(t, ctx.AlbumRepo.Create(context.Background(), album))

	next, err := ctx.AlbumRepo.NextSortOrder(context.Background(), album.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	var photoIDs []string
	for i := 0; i < 3; i++ {
		next, err := ctx.AlbumRepo.NextSortOrder(context.Background(), album.ID)
		require.NoError(t, err)

		photo := &gallery.Photo{
			ID:        uuid.NewString(),
			AlbumID:   album.ID,
			ImageURL:  "https://cdn.example.com/media/p.jpg",
			SortOrder: next,
		}
		require.NoError(t, ctx.AlbumRepo.AddPhoto(context.Background(), photo))
		photoIDs = append(photoIDs, photo.ID)
	}

	require.NoError(t, ctx.AlbumRepo.DeletePhoto(context.Background(), album.ID, photoIDs[1]))

	fetched, err := ctx.AlbumRepo.GetBySlug(context.Background(), "rally-2026")
	require.NoError(t, err)
	require.Len(t, fetched.Photos, 2)
	assert.Equal(t, photoIDs[0], fetched.Photos[0].ID)
	assert.Equal(t, photoIDs[2], fetched.Photos[1].ID)
	assert.Equal(t, 2, fetched.Photos[1].SortOrder)

	err = ctx.AlbumRepo.DeletePhoto(context.Background(), uuid.NewString(), photoIDs[0])
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestVoterSqliteRepository_UpsertAndSearch(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	batch := []*voters.Voter{
		CreateTestVoter(t, "1001001", "Abdul Karim"),
		CreateTestVoter(t, "1001002", "Karima Begum"),
		CreateTestVoter(t, "1001003", "Jamal Hossain"),
	}
	require.NoError(t, ctx.VoterRepo.UpsertBatch(context.Background(), batch))

	updated := CreateTestVoter(t, "1001002", "Karima Khatun")
	updated.Ward = "9"
	require.NoError(t, ctx.VoterRepo.UpsertBatch(context.Background(), []*voters.Voter{updated}))

	list, total, err := ctx.VoterRepo.List(context.Background(), voters.NewVoterQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)

	found, err := ctx.VoterRepo.Search(context.Background(), &voters.SearchQuery{VoterNumber: "1001002"}, voters.MaxSearchResults)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Karima Khatun", found[0].NameEn)
	assert.Equal(t, "9", found[0].Ward)

	found, err = ctx.VoterRepo.Search(context.Background(), &voters.SearchQuery{Name: "karim"}, voters.MaxSearchResults)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = ctx.VoterRepo.Search(context.Background(), &voters.SearchQuery{Name: "karim", Ward: "9"}, voters.MaxSearchResults)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = ctx.VoterRepo.Search(context.Background(), &voters.SearchQuery{Name: "karim"}, 1)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestComplaintSqliteRepository_TrackingAndSearch(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	complaint := &complaints.Complaint{
		ID:          uuid.NewString(),
		TrackingID:  "CMP-20260101-ABC123",
		Name:        "Salma Akter",
		Phone:       "8801712345678",
		Category:    "roads",
		Subject:     "Broken culvert",
		Description: "The culvert near the school collapsed.",
		Status:      complaints.StatusPending,
	}
	require.NoError(t, ctx.ComplaintRepo.Create(context.Background(), complaint))

	fetched, err := ctx.ComplaintRepo.GetByTrackingID(context.Background(), "CMP-20260101-ABC123")
	require.NoError(t, err)
	assert.Equal(t, complaint.ID, fetched.ID)

	query := complaints.NewComplaintQuery()
	query.Search = "culvert"
	list, total, err := ctx.ComplaintRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	stats, err := ctx.StatsRepo.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PendingComplaints)
	assert.Equal(t, int64(0), stats.PendingOrders)
}

func TestSitemapSqliteRepository_ListsOnlyPublicContent(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.NewsRepo.Create(context.Background(), CreateTestArticle(t, "public-news", news.StatusPublished)))
	require.NoError(t, ctx.NewsRepo.Create(context.Background(), CreateTestArticle(t, "hidden-news", news.StatusDraft)))
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), CreateTestProduct(t, "tote-bag", 1)))

	entries, err := ctx.SitemapRepo.ListEntries(context.Background())
	require.NoError(t, err)

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	assert.ElementsMatch(t, []string{"/news/public-news", "/store/tote-bag"}, paths)
}

func TestNewRepositories_SharesConnection(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	repos, err := NewRepositories(ctx.DB, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, repos.News.Create(context.Background(), CreateTestArticle(t, "shared-connection", news.StatusPublished)))

	// The article is visible through the repository SetupTestDB built on the same db
	article, err := ctx.NewsRepo.GetBySlug(context.Background(), "shared-connection")
	require.NoError(t, err)
	assert.Equal(t, "shared-connection", article.Slug)
	assert.NotNil(t, repos.Stats)
	assert.NotNil(t, repos.Transactor)
}
