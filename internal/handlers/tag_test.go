package handlers

import (
	"errors"
	"net/http"
	"testing"

	"news-management/internal/apperr"
	"news-management/internal/models"
	"news-management/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagFixture() *stubTags {
	return &stubTags{tags: map[int64]models.Tag{
		1: {ID: 1, Name: "go"},
		2: {ID: 2, Name: "news"},
		3: {ID: 3, Name: "sport"},
	}}
}

func TestTagHandler_ListPaginates(t *testing.T) {
	h := NewTagHandler(tagFixture(), tr)
	rec := serve(t, http.MethodGet, "/tags", "/tags?page=2&size=2", nil, h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.Pagination[models.Tag]
	decodeResp(t, rec, &page)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.TotalElements)
	require.Len(t, page.Entities, 1)
	assert.Equal(t, "sport", page.Entities[0].Name)
}

func TestTagHandler_ListHugePageIsEmpty(t *testing.T) {
	h := NewTagHandler(tagFixture(), tr)
	rec := serve(t, http.MethodGet, "/tags", "/tags?page=4611686018427387905&size=3", nil, h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.Pagination[models.Tag]
	decodeResp(t, rec, &page)
	assert.Empty(t, page.Entities)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 3, page.TotalElements)
}

func TestTagHandler_Get(t *testing.T) {
	h := NewTagHandler(tagFixture(), tr)

	rec := serve(t, http.MethodGet, "/tags/{id}", "/tags/2", nil, h.Get)
	require.Equal(t, http.StatusOK, rec.Code)
	var tag models.Tag
	decodeResp(t, rec, &tag)
	assert.Equal(t, "news", tag.Name)

	rec = serve(t, http.MethodGet, "/tags/{id}", "/tags/42", nil, h.Get)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperr.NotFoundTag, decodeResp(t, rec, nil).Code)

	rec = serve(t, http.MethodGet, "/tags/{id}", "/tags/abc", nil, h.Get)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.BadID, decodeResp(t, rec, nil).Code)
}

func TestTagHandler_CreateValidation(t *testing.T) {
	stub := tagFixture()
	h := NewTagHandler(stub, tr)

	rec := serve(t, http.MethodPost, "/tags", "/tags", map[string]string{"name": "golang"}, h.Create)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tag models.Tag
	decodeResp(t, rec, &tag)
	assert.Equal(t, int64(10), tag.ID)
	assert.Equal(t, "golang", stub.created.Name)

	rec = serve(t, http.MethodPost, "/tags", "/tags", map[string]string{}, h.Create)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.BadRequestBody, decodeResp(t, rec, nil).Code)

	rec = serve(t, http.MethodPost, "/tags", "/tags", "{not json", h.Create)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTagHandler_CreateLocalizedServiceError(t *testing.T) {
	stub := tagFixture()
	stub.err = apperr.IncorrectParameter(apperr.BadTagNameLength, 2, 15)
	h := NewTagHandler(stub, tr)

	rec := serve(t, http.MethodPost, "/tags", "/tags", map[string]string{"name": "x"}, h.Create)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResp(t, rec, nil)
	assert.Equal(t, apperr.BadTagNameLength, resp.Code)
	assert.Equal(t, "Tag name length must be between 2 and 15 characters", resp.Error)
}

func TestTagHandler_InternalError(t *testing.T) {
	stub := tagFixture()
	stub.err = apperr.Service("tags.FindAll", errors.New("db down"))
	h := NewTagHandler(stub, tr)

	rec := serve(t, http.MethodGet, "/tags/search", "/tags/search?name=go", nil, h.Search)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperr.InternalError, decodeResp(t, rec, nil).Code)
}

func TestTagHandler_UpdateAndDeleteMissing(t *testing.T) {
	h := NewTagHandler(tagFixture(), tr)

	rec := serve(t, http.MethodPatch, "/tags/{id}", "/tags/9", map[string]string{"name": "golang"}, h.Update)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodDelete, "/tags/{id}", "/tags/9", nil, h.Delete)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodDelete, "/tags/{id}", "/tags/1", nil, h.Delete)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTagHandler_AttachDetach(t *testing.T) {
	stub := tagFixture()
	h := NewTagHandler(stub, tr)
	route := "/news/{id}/tags/{tagId}"

	rec := serve(t, http.MethodPost, route, "/news/1/tags/2", nil, h.Attach)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "add", stub.lastOp)

	stub.linked = true
	rec = serve(t, http.MethodDelete, route, "/news/1/tags/2", nil, h.Detach)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "remove", stub.lastOp)

	rec = serve(t, http.MethodPost, route, "/news/1/tags/zero", nil, h.Attach)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
