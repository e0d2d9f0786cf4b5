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

type TagService interface {
	Create(ctx context.Context, tag *models.Tag) (bool, error)
	Update(ctx context.Context, tag *models.Tag) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteFromAllNews(ctx context.Context, id int64) (bool, error)
	AddToNews(ctx context.Context, tagID, newsID int64) (bool, error)
	RemoveFromNews(ctx context.Context, tagID, newsID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.Tag, error)
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindByPartOfName(ctx context.Context, part string) ([]models.Tag, error)
	FindByNewsID(ctx context.Context, newsID int64) ([]models.Tag, error)
	GetPagination(list []models.Tag, size, page int) pagination.Pagination[models.Tag]
}

type TagHandler struct {
	base
	tags TagService
}

func NewTagHandler(tags TagService, tr *i18n.Translator) *TagHandler {
	return &TagHandler{base: base{tr: tr}, tags: tags}
}

type tagRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary Список тегов
// @Tags tags
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param size query int false "Размер страницы"
// @Success 200 {object} pagination.Pagination[models.Tag]
// @Router /tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)
	list, err := h.tags.FindAll(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, h.tags.GetPagination(list, p.size, p.page))
}

// Get godoc
// @Summary Тег по ID
// @Tags tags
// @Produce json
// @Param id path int true "ID тега"
// @Success 200 {object} models.Tag
// @Failure 404 {object} helpers.Response
// @Router /tags/{id} [get]
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	tag, err := h.tags.FindByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if tag == nil {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundTag)
		return
	}
	helpers.JSON(w, http.StatusOK, tag)
}

// Search godoc
// @Summary Поиск тегов по части имени
// @Tags tags
// @Produce json
// @Param name query string true "Часть имени"
// @Success 200 {object} pagination.Pagination[models.Tag]
// @Failure 400 {object} helpers.Response
// @Router /tags/search [get]
func (h *TagHandler) Search(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)
	list, err := h.tags.FindByPartOfName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, h.tags.GetPagination(list, p.size, p.page))
}

// ByNews godoc
// @Summary Теги новости
// @Tags tags
// @Produce json
// @Param id path int true "ID новости"
// @Success 200 {array} models.Tag
// @Router /news/{id}/tags [get]
func (h *TagHandler) ByNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.tags.FindByNewsID(r.Context(), newsID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create godoc
// @Summary Создать тег (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body tagRequest true "Тег"
// @Success 201 {object} models.Tag
// @Failure 400 {object} helpers.Response
// @Router /admin/tags [post]
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !h.decode(w, r, &req) {
		return
	}
	var tag models.Tag
	if err := copier.Copy(&tag, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	if _, err := h.tags.Create(r.Context(), &tag); err != nil {
		h.respondErr(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("Тег создан", zap.Int64("tag_id", tag.ID))
	helpers.JSON(w, http.StatusCreated, tag)
}

// Update godoc
// @Summary Обновить тег (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID тега"
// @Param input body tagRequest true "Тег"
// @Success 200 {object} models.Tag
// @Failure 404 {object} helpers.Response
// @Router /admin/tags/{id} [patch]
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req tagRequest
	if !h.decode(w, r, &req) {
		return
	}
	tag := models.Tag{ID: id}
	if err := copier.Copy(&tag, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	updated, err := h.tags.Update(r.Context(), &tag)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !updated {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundTag)
		return
	}
	helpers.JSON(w, http.StatusOK, tag)
}

// Delete godoc
// @Summary Удалить тег вместе со связями (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Param id path int true "ID тега"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/tags/{id} [delete]
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.tags.DeleteByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !deleted {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundTag)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"id": id})
}

// DetachFromAllNews godoc
// @Summary Снять тег со всех новостей (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Param id path int true "ID тега"
// @Success 200 {object} helpers.Response
// @Router /admin/tags/{id}/news [delete]
func (h *TagHandler) DetachFromAllNews(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.tags.DeleteFromAllNews(r.Context(), id); err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Attach godoc
// @Summary Привязать тег к новости (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Param id path int true "ID новости"
// @Param tagId path int true "ID тега"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/news/{id}/tags/{tagId} [post]
func (h *TagHandler) Attach(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.tags.AddToNews)
}

// Detach godoc
// @Summary Отвязать тег от новости (только admin)
// @Tags admin-tags
// @Security ApiKeyAuth
// @Param id path int true "ID новости"
// @Param tagId path int true "ID тега"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/news/{id}/tags/{tagId} [delete]
func (h *TagHandler) Detach(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.tags.RemoveFromNews)
}

func (h *TagHandler) link(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, tagID, newsID int64) (bool, error)) {
	newsID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := h.pathID(w, r, "tagId")
	if !ok {
		return
	}
	done, err := op(r.Context(), tagID, newsID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !done {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundTag)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"tag_id": tagID, "news_id": newsID})
}
