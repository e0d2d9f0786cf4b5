package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-management/internal/i18n"
	"news-management/internal/models"
	"news-management/internal/pagination"
	helpers "news-management/internal/utils/helpres"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

var tr = i18n.NewTranslator(i18n.English)

// serve прогоняет один запрос через роутер с единственным маршрутом.
func serve(t *testing.T, method, route, target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	r := mux.NewRouter()
	r.HandleFunc(route, h).Methods(method)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func decodeResp(t *testing.T, rec *httptest.ResponseRecorder, data any) helpers.Response {
	t.Helper()
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
		Code  string          `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return helpers.Response{Error: raw.Error, Code: raw.Code}
}

type stubTags struct {
	tags    map[int64]models.Tag
	err     error
	linked  bool
	lastOp  string
	created *models.Tag
}

func (s *stubTags) Create(_ context.Context, tag *models.Tag) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	tag.ID = 10
	s.created = tag
	return true, nil
}

func (s *stubTags) Update(_ context.Context, tag *models.Tag) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.tags[tag.ID]
	return ok, nil
}

func (s *stubTags) DeleteByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.tags[id]
	return ok, s.err
}

func (s *stubTags) DeleteFromAllNews(_ context.Context, _ int64) (bool, error) {
	s.lastOp = "detach-all"
	return true, s.err
}

func (s *stubTags) AddToNews(_ context.Context, _, _ int64) (bool, error) {
	s.lastOp = "add"
	return s.linked, s.err
}

func (s *stubTags) RemoveFromNews(_ context.Context, _, _ int64) (bool, error) {
	s.lastOp = "remove"
	return s.linked, s.err
}

func (s *stubTags) FindByID(_ context.Context, id int64) (*models.Tag, error) {
	if t, ok := s.tags[id]; ok {
		return &t, nil
	}
	return nil, s.err
}

func (s *stubTags) FindAll(_ context.Context) ([]models.Tag, error) {
	out := []models.Tag{}
	for i := int64(1); i <= int64(len(s.tags)); i++ {
		out = append(out, s.tags[i])
	}
	return out, s.err
}

func (s *stubTags) FindByPartOfName(ctx context.Context, _ string) ([]models.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.FindAll(ctx)
}

func (s *stubTags) FindByNewsID(ctx context.Context, _ int64) ([]models.Tag, error) {
	return s.FindAll(ctx)
}

func (s *stubTags) GetPagination(list []models.Tag, size, page int) pagination.Pagination[models.Tag] {
	return pagination.Paginate(list, size, page)
}
