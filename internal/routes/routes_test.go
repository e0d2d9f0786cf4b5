package routes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-management/internal/handlers"
	"news-management/internal/i18n"
	"news-management/internal/middleware"
	"news-management/internal/models"
	"news-management/internal/pagination"
	"news-management/internal/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type roleParser struct{}

func (roleParser) ParseToken(_ context.Context, token string) (*utils.Claims, error) {
	switch token {
	case "user-token":
		return &utils.Claims{UserID: 2, Role: models.RoleUser}, nil
	case "admin-token":
		return &utils.Claims{UserID: 1, Role: models.RoleAdmin}, nil
	}
	return nil, errors.New("bad token")
}

type authStub struct{ loggedOut bool }

func (a *authStub) Register(context.Context, string, string) (*models.User, error) { return nil, nil }
func (a *authStub) Login(context.Context, string, string) (string, error)          { return "t", nil }
func (a *authStub) Logout(context.Context, string) error {
	a.loggedOut = true
	return nil
}

type authorsStub struct{}

func (authorsStub) Create(_ context.Context, a *models.Author) (bool, error) {
	a.ID = 1
	return true, nil
}
func (authorsStub) Update(context.Context, *models.Author) (bool, error)        { return true, nil }
func (authorsStub) DeleteByID(context.Context, int64) (bool, error)             { return true, nil }
func (authorsStub) FindByID(context.Context, int64) (*models.Author, error)     { return nil, nil }
func (authorsStub) FindAll(context.Context) ([]models.Author, error)            { return []models.Author{}, nil }
func (authorsStub) FindByPartOfName(context.Context, string) ([]models.Author, error) {
	return []models.Author{}, nil
}
func (authorsStub) GetPagination(list []models.Author, size, page int) pagination.Pagination[models.Author] {
	return pagination.Paginate(list, size, page)
}

func newRouter(auth *authStub) *mux.Router {
	tr := i18n.NewTranslator(i18n.English)
	r := mux.NewRouter()
	InitRoutes(r, tr, roleParser{},
		middleware.NewHTTPMetrics(prometheus.NewRegistry()),
		middleware.NewRateLimiter(100, 100, tr),
		handlers.NewAuthHandler(auth, tr),
		handlers.NewNewsHandler(nil, tr),
		handlers.NewCommentHandler(nil, tr),
		handlers.NewTagHandler(nil, tr),
		handlers.NewAuthorHandler(authorsStub{}, tr),
		handlers.NewAdminLogsHandler("", tr),
	)
	return r
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_PublicRead(t *testing.T) {
	rec := do(newRouter(&authStub{}), http.MethodGet, "/api/v2/authors", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
}

func TestRoutes_AdminGuards(t *testing.T) {
	r := newRouter(&authStub{})
	body := `{"name":"Ivan Bunin"}`

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/v2/admin/authors", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/v2/admin/authors", "garbage", body).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/api/v2/admin/authors", "user-token", body).Code)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v2/admin/authors", "admin-token", body).Code)
}

func TestRoutes_LogoutRequiresToken(t *testing.T) {
	auth := &authStub{}
	r := newRouter(auth)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/v2/auth/logout", "", "").Code)
	assert.False(t, auth.loggedOut)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v2/auth/logout", "user-token", "").Code)
	assert.True(t, auth.loggedOut)
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	// nil-сервис новостей паникует внутри хендлера
	rec := do(newRouter(&authStub{}), http.MethodGet, "/api/v2/news", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
