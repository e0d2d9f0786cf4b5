package handlers

import (
	"context"
	"net/http"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/pagination"
	helpers "news-management/internal/utils/helpres"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type NewsService interface {
	Create(ctx context.Context, n *models.News) (bool, error)
	Update(ctx context.Context, n *models.News) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.News, error)
	FindAll(ctx context.Context) ([]models.News, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]models.News, error)
	FindByTagID(ctx context.Context, tagID int64) ([]models.News, error)
	FindByPartOfTitle(ctx context.Context, part string) ([]models.News, error)
	SortByCreatedAsc(list []models.News) ([]models.News, error)
	SortByCreatedDesc(list []models.News) ([]models.News, error)
	SortByModifiedAsc(list []models.News) ([]models.News, error)
	SortByModifiedDesc(list []models.News) ([]models.News, error)
	GetPagination(list []models.News, size, page int) pagination.Pagination[models.News]
}

type NewsHandler struct {
	base
	news NewsService
}

func NewNewsHandler(news NewsService, tr *i18n.Translator) *NewsHandler {
	return &NewsHandler{base: base{tr: tr}, news: news}
}

type createNewsRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

type updateNewsRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	AuthorID int64  `json:"author_id" validate:"omitempty,gt=0"`
}

// List godoc
// @Summary Список новостей
// @Tags news
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param size query int false "Размер страницы"
// @Param sort query string false "created | modified"
// @Param order query string false "asc | desc"
// @Success 200 {object} pagination.Pagination[models.News]
// @Router /news [get]
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.news.FindAll(r.Context())
	h.page(w, r, list, err)
}

// Search godoc
// @Summary Поиск новостей по части заголовка
// @Tags news
// @Produce json
// @Param title query string true "Часть заголовка"
// @Success 200 {object} pagination.Pagination[models.News]
// @Failure 400 {object} helpers.Response
// @Router /news/search [get]
func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	list, err := h.news.FindByPartOfTitle(r.Context(), r.URL.Query().Get("title"))
	h.page(w, r, list, err)
}

// ByAuthor godoc
// @Summary Новости автора
// @Tags news
// @Produce json
// @Param id path int true "ID автора"
// @Success 200 {object} pagination.Pagination[models.News]
// @Router /authors/{id}/news [get]
func (h *NewsHandler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.news.FindByAuthorID(r.Context(), id)
	h.page(w, r, list, err)
}

// ByTag godoc
// @Summary Новости с тегом
// @Tags news
// @Produce json
// @Param id path int true "ID тега"
// @Success 200 {object} pagination.Pagination[models.News]
// @Router /tags/{id}/news [get]
func (h *NewsHandler) ByTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.news.FindByTagID(r.Context(), id)
	h.page(w, r, list, err)
}

func (h *NewsHandler) page(w http.ResponseWriter, r *http.Request, list []models.News, err error) {
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	p := parseListParams(r)
	var sorted []models.News
	switch {
	case p.sort == "created" && p.desc:
		sorted, err = h.news.SortByCreatedDesc(list)
	case p.sort == "created":
		sorted, err = h.news.SortByCreatedAsc(list)
	case p.sort == "modified" && p.desc:
		sorted, err = h.news.SortByModifiedDesc(list)
	case p.sort == "modified":
		sorted, err = h.news.SortByModifiedAsc(list)
	default:
		sorted = list
	}
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, h.news.GetPagination(sorted, p.size, p.page))
}

// Get godoc
// @Summary Получить новость по ID
// @Tags news
// @Produce json
// @Param id path int true "ID новости"
// @Success 200 {object} models.News
// @Failure 404 {object} helpers.Response
// @Router /news/{id} [get]
func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	news, err := h.news.FindByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if news == nil {
		logger.WithCtx(r.Context()).Warn("Новость не найдена", zap.Int64("news_id", id))
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundNews)
		return
	}
	helpers.JSON(w, http.StatusOK, news)
}

// Create godoc
// @Summary Создать новость (только admin)
// @Tags admin-news
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body createNewsRequest true "Данные новости"
// @Success 201 {object} models.News
// @Failure 400 {object} helpers.Response
// @Router /admin/news [post]
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNewsRequest
	if !h.decode(w, r, &req) {
		return
	}
	var news models.News
	if err := copier.Copy(&news, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	if _, err := h.news.Create(r.Context(), &news); err != nil {
		h.respondErr(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("Новость успешно создана", zap.Int64("news_id", news.ID))
	helpers.JSON(w, http.StatusCreated, news)
}

// Update godoc
// @Summary Обновить новость (только admin)
// @Tags admin-news
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID новости"
// @Param input body updateNewsRequest true "Новое содержимое"
// @Success 200 {object} models.News
// @Failure 404 {object} helpers.Response
// @Router /admin/news/{id} [patch]
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateNewsRequest
	if !h.decode(w, r, &req) {
		return
	}
	news := models.News{ID: id}
	if err := copier.Copy(&news, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	updated, err := h.news.Update(r.Context(), &news)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !updated {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundNews)
		return
	}
	helpers.JSON(w, http.StatusOK, news)
}

// Delete godoc
// @Summary Удалить новость с комментариями и связями (только admin)
// @Tags admin-news
// @Security ApiKeyAuth
// @Param id path int true "ID новости"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/news/{id} [delete]
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.news.DeleteByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !deleted {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundNews)
		return
	}
	logger.WithCtx(r.Context()).Info("Новость успешно удалена", zap.Int64("news_id", id))
	helpers.JSON(w, http.StatusOK, map[string]int64{"id": id})
}
