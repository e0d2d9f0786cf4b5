package services

import (
	"context"
	"testing"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type newsFixture struct {
	svc      *NewsService
	news     *fakeNewsRepo
	comments *fakeCommentRepo
	tags     *fakeTagRepo
}

func newNewsFixture(c *calls, now Clock) newsFixture {
	f := newsFixture{
		news:     newFakeNewsRepo(c),
		comments: newFakeCommentRepo(c),
		tags:     newFakeTagRepo(c),
	}
	f.svc = NewNewsService(f.news, f.comments, f.tags, newFakeAuthorRepo("Tolstoy", "Chekhov"), now)
	return f
}

func TestNewsService_Create(t *testing.T) {
	f := newNewsFixture(nil, fixedClock(t0))

	n := models.NewNews("Breaking news", "Some content", 1, time.Time{})
	ok, err := f.svc.Create(context.Background(), n)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, t0, f.news.news[n.ID].Created)
	assert.Equal(t, t0, f.news.news[n.ID].Modified)
}

func TestNewsService_CreateUnknownAuthor(t *testing.T) {
	f := newNewsFixture(nil, nil)

	ok, err := f.svc.Create(context.Background(), models.NewNews("Breaking news", "Some content", 9, t0))
	assert.False(t, ok)
	ip, isParam := apperr.IsIncorrectParameter(err)
	require.True(t, isParam)
	assert.Equal(t, apperr.AuthorNotExists, ip.Code)
	assert.Empty(t, f.news.news)
}

func TestNewsService_CreateInvalid(t *testing.T) {
	f := newNewsFixture(nil, nil)
	for _, n := range []*models.News{
		nil,
		{Title: "abc", Content: "Some content", AuthorID: 1},
		{Title: "Breaking news", Content: "abc", AuthorID: 1},
		{Title: "Breaking news", Content: "Some content", AuthorID: 0},
	} {
		ok, err := f.svc.Create(context.Background(), n)
		assert.False(t, ok)
		_, isParam := apperr.IsIncorrectParameter(err)
		assert.True(t, isParam)
	}
}

func TestNewsService_UpdateKeepsCreated(t *testing.T) {
	f := newNewsFixture(nil, fixedClock(t0, t0.Add(time.Hour)))
	ctx := context.Background()

	n := models.NewNews("Breaking news", "Some content", 1, time.Time{})
	_, err := f.svc.Create(ctx, n)
	require.NoError(t, err)

	ok, err := f.svc.Update(ctx, &models.News{ID: n.ID, Title: "Updated title", Content: "Updated content"})
	require.NoError(t, err)
	assert.True(t, ok)

	stored := f.news.news[n.ID]
	assert.Equal(t, "Updated title", stored.Title)
	assert.Equal(t, int64(1), stored.AuthorID)
	assert.Equal(t, t0, stored.Created)
	assert.Equal(t, t0.Add(time.Hour), stored.Modified)
}

func TestNewsService_UpdateMissing(t *testing.T) {
	f := newNewsFixture(nil, nil)
	ok, err := f.svc.Update(context.Background(), &models.News{ID: 5, Title: "Updated title", Content: "Updated content", AuthorID: 1})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNewsService_DeleteByIDOrder(t *testing.T) {
	c := &calls{}
	f := newNewsFixture(c, nil)
	f.news.put(models.News{ID: 1, Title: "Breaking news", Content: "Some content", AuthorID: 1})
	f.comments.comments[1] = &models.Comment{ID: 1, NewsID: 1, Content: "a"}
	f.tags.links[[2]int64{3, 1}] = true

	ok, err := f.svc.DeleteByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{
		"news.FindByID",
		"comments.DeleteByNewsID",
		"tags.DeleteByNewsID",
		"news.DeleteByID",
	}, c.log)
	assert.Empty(t, f.comments.comments)
	assert.Empty(t, f.tags.links)
	assert.Empty(t, f.news.news)
}

func TestNewsService_Finders(t *testing.T) {
	f := newNewsFixture(nil, nil)
	f.news.put(models.News{ID: 1, Title: "Go release", AuthorID: 1, TagIDs: []int64{7}})
	f.news.put(models.News{ID: 2, Title: "Weather today", AuthorID: 2})
	ctx := context.Background()

	got, err := f.svc.FindByAuthorID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got, err = f.svc.FindByTagID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got, err = f.svc.FindByPartOfTitle(ctx, "WEATHER")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = f.svc.FindByPartOfTitle(ctx, " ")
	ip, ok := apperr.IsIncorrectParameter(err)
	require.True(t, ok)
	assert.Equal(t, apperr.BadPartOfNewsTitle, ip.Code)

	got, err = f.svc.FindByAuthorID(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewsService_SortByCreatedDesc(t *testing.T) {
	f := newNewsFixture(nil, nil)
	in := []models.News{
		{ID: 1, Created: t0},
		{ID: 2, Created: t0.Add(time.Hour)},
	}
	got, err := f.svc.SortByCreatedDesc(in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), in[0].ID)

	_, err = f.svc.Sort(in, nil)
	assert.True(t, apperr.IsService(err))
}
