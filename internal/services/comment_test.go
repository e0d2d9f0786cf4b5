package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(ts ...time.Time) Clock {
	i := 0
	return func() time.Time {
		if i >= len(ts) {
			return ts[len(ts)-1]
		}
		now := ts[i]
		i++
		return now
	}
}

func newCommentService(c *calls, now Clock) (*CommentService, *fakeCommentRepo, *fakeNewsRepo) {
	comments := newFakeCommentRepo(c)
	news := newFakeNewsRepo(c)
	news.put(models.News{ID: 1, Title: "Title", Content: "Content", AuthorID: 1})
	return NewCommentService(comments, news, now), comments, news
}

func sampleComments() []models.Comment {
	return []models.Comment{
		{ID: 1, Content: "b", Created: t0.Add(2 * time.Hour), Modified: t0.Add(1 * time.Hour)},
		{ID: 2, Content: "a", Created: t0, Modified: t0.Add(3 * time.Hour)},
		{ID: 3, Content: "c", Created: t0.Add(1 * time.Hour), Modified: t0},
	}
}

func ids(list []models.Comment) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestCommentService_SortNilArguments(t *testing.T) {
	svc, _, _ := newCommentService(nil, nil)

	_, err := svc.Sort(nil, commentByCreated)
	assert.True(t, apperr.IsService(err))

	_, err = svc.Sort(sampleComments(), nil)
	assert.True(t, apperr.IsService(err))

	_, err = svc.SortByCreatedAsc(nil)
	assert.True(t, apperr.IsService(err))
}

func TestCommentService_SortDoesNotMutateInput(t *testing.T) {
	svc, _, _ := newCommentService(nil, nil)
	in := sampleComments()
	before := sampleComments()

	cases := []struct {
		name string
		sort func([]models.Comment) ([]models.Comment, error)
		want []int64
	}{
		{"created asc", svc.SortByCreatedAsc, []int64{2, 3, 1}},
		{"created desc", svc.SortByCreatedDesc, []int64{1, 3, 2}},
		{"modified asc", svc.SortByModifiedAsc, []int64{3, 1, 2}},
		{"modified desc", svc.SortByModifiedDesc, []int64{2, 1, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.sort(in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
			assert.Equal(t, before, in)
		})
	}
}

func TestCommentService_SortEmptyList(t *testing.T) {
	svc, _, _ := newCommentService(nil, nil)
	got, err := svc.SortByCreatedAsc([]models.Comment{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCommentService_Create(t *testing.T) {
	svc, comments, _ := newCommentService(nil, fixedClock(t0))

	c := &models.Comment{Content: "hello", NewsID: 1}
	ok, err := svc.Create(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, t0, comments.comments[c.ID].Created)
	assert.Equal(t, t0, comments.comments[c.ID].Modified)
}

func TestCommentService_CreateRequiresExistingNews(t *testing.T) {
	c := &calls{}
	svc, _, _ := newCommentService(c, nil)

	ok, err := svc.Create(context.Background(), &models.Comment{Content: "hello", NewsID: 42})
	assert.False(t, ok)
	ip, isParam := apperr.IsIncorrectParameter(err)
	require.True(t, isParam)
	assert.Equal(t, apperr.NewsNotExists, ip.Code)
	assert.Equal(t, []string{"news.FindByID"}, c.log)
}

func TestCommentService_CreateInvalid(t *testing.T) {
	c := &calls{}
	svc, _, _ := newCommentService(c, nil)

	long := make([]rune, models.CommentMaxContentLength+1)
	for i := range long {
		long[i] = 'x'
	}
	for _, cm := range []*models.Comment{
		{Content: "", NewsID: 1},
		{Content: "   ", NewsID: 1},
		{Content: string(long), NewsID: 1},
		{Content: "ok", NewsID: 0},
	} {
		ok, err := svc.Create(context.Background(), cm)
		assert.False(t, ok)
		_, isParam := apperr.IsIncorrectParameter(err)
		assert.True(t, isParam)
	}
	assert.Empty(t, c.log)
}

func TestCommentService_UpdateKeepsCreated(t *testing.T) {
	svc, comments, _ := newCommentService(nil, fixedClock(t0, t0.Add(time.Hour)))
	ctx := context.Background()

	c := &models.Comment{Content: "first", NewsID: 1}
	_, err := svc.Create(ctx, c)
	require.NoError(t, err)

	ok, err := svc.Update(ctx, &models.Comment{ID: c.ID, Content: "second"})
	require.NoError(t, err)
	assert.True(t, ok)

	stored := comments.comments[c.ID]
	assert.Equal(t, "second", stored.Content)
	assert.Equal(t, int64(1), stored.NewsID)
	assert.Equal(t, t0, stored.Created)
	assert.Equal(t, t0.Add(time.Hour), stored.Modified)
}

func TestCommentService_DeleteByNewsID(t *testing.T) {
	svc, comments, _ := newCommentService(nil, nil)
	ctx := context.Background()
	for _, content := range []string{"a", "b"} {
		_, err := svc.Create(ctx, &models.Comment{Content: content, NewsID: 1})
		require.NoError(t, err)
	}

	ok, err := svc.DeleteByNewsID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, comments.comments)

	ok, err = svc.DeleteByNewsID(ctx, 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCommentService_DeleteByID(t *testing.T) {
	svc, _, _ := newCommentService(nil, nil)
	ctx := context.Background()
	c := &models.Comment{Content: "a", NewsID: 1}
	_, err := svc.Create(ctx, c)
	require.NoError(t, err)

	ok, err := svc.DeleteByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommentService_RepositoryErrorsWrapped(t *testing.T) {
	svc, comments, _ := newCommentService(nil, nil)
	boom := errors.New("boom")
	comments.err = boom
	ctx := context.Background()

	_, err := svc.FindAll(ctx)
	assert.True(t, apperr.IsService(err))
	assert.ErrorIs(t, err, boom)

	_, err = svc.FindByNewsID(ctx, 1)
	assert.True(t, apperr.IsService(err))

	_, err = svc.FindByID(ctx, 1)
	assert.True(t, apperr.IsService(err))
}

func TestCommentService_FindByNewsID(t *testing.T) {
	svc, _, _ := newCommentService(nil, nil)
	ctx := context.Background()
	_, err := svc.Create(ctx, &models.Comment{Content: "a", NewsID: 1})
	require.NoError(t, err)

	got, err := svc.FindByNewsID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.FindByNewsID(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
