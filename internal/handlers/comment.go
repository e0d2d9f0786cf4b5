package handlers

import (
	"context"
	"net/http"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/models"
	"news-management/internal/pagination"
	helpers "news-management/internal/utils/helpres"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	Create(ctx context.Context, c *models.Comment) (bool, error)
	Update(ctx context.Context, c *models.Comment) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteByNewsID(ctx context.Context, newsID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	FindAll(ctx context.Context) ([]models.Comment, error)
	FindByNewsID(ctx context.Context, newsID int64) ([]models.Comment, error)
	SortByCreatedAsc(list []models.Comment) ([]models.Comment, error)
	SortByCreatedDesc(list []models.Comment) ([]models.Comment, error)
	SortByModifiedAsc(list []models.Comment) ([]models.Comment, error)
	SortByModifiedDesc(list []models.Comment) ([]models.Comment, error)
	GetPagination(list []models.Comment, size, page int) pagination.Pagination[models.Comment]
}

type CommentHandler struct {
	base
	comments CommentService
}

func NewCommentHandler(comments CommentService, tr *i18n.Translator) *CommentHandler {
	return &CommentHandler{base: base{tr: tr}, comments: comments}
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
	NewsID  int64  `json:"news_id" validate:"required,gt=0"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// List godoc
// @Summary Список комментариев
// @Tags comments
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param size query int false "Размер страницы"
// @Param sort query string false "created | modified"
// @Param order query string false "asc | desc"
// @Success 200 {object} pagination.Pagination[models.Comment]
// @Router /comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.comments.FindAll(r.Context())
	h.page(w, r, list, err)
}

// ByNews godoc
// @Summary Комментарии новости
// @Tags comments
// @Produce json
// @Param id path int true "ID новости"
// @Success 200 {object} pagination.Pagination[models.Comment]
// @Router /news/{id}/comments [get]
func (h *CommentHandler) ByNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.comments.FindByNewsID(r.Context(), newsID)
	h.page(w, r, list, err)
}

func (h *CommentHandler) page(w http.ResponseWriter, r *http.Request, list []models.Comment, err error) {
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	p := parseListParams(r)
	sorted, err := h.sort(list, p)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, h.comments.GetPagination(sorted, p.size, p.page))
}

func (h *CommentHandler) sort(list []models.Comment, p listParams) ([]models.Comment, error) {
	switch {
	case p.sort == "created" && p.desc:
		return h.comments.SortByCreatedDesc(list)
	case p.sort == "created":
		return h.comments.SortByCreatedAsc(list)
	case p.sort == "modified" && p.desc:
		return h.comments.SortByModifiedDesc(list)
	case p.sort == "modified":
		return h.comments.SortByModifiedAsc(list)
	}
	return list, nil
}

// Get godoc
// @Summary Комментарий по ID
// @Tags comments
// @Produce json
// @Param id path int true "ID комментария"
// @Success 200 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /comments/{id} [get]
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.comments.FindByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if c == nil {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundComment)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Create godoc
// @Summary Оставить комментарий (авторизованный пользователь)
// @Tags comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body createCommentRequest true "Комментарий"
// @Success 201 {object} models.Comment
// @Failure 400 {object} helpers.Response
// @Router /comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !h.decode(w, r, &req) {
		return
	}
	var c models.Comment
	if err := copier.Copy(&c, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	if _, err := h.comments.Create(r.Context(), &c); err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}

// Update godoc
// @Summary Изменить комментарий (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID комментария"
// @Param input body updateCommentRequest true "Новый текст"
// @Success 200 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /admin/comments/{id} [patch]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateCommentRequest
	if !h.decode(w, r, &req) {
		return
	}
	c := models.Comment{ID: id, Content: req.Content}
	updated, err := h.comments.Update(r.Context(), &c)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !updated {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundComment)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить комментарий (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Param id path int true "ID комментария"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.comments.DeleteByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !deleted {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundComment)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"id": id})
}

// DeleteByNews godoc
// @Summary Удалить все комментарии новости (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Param id path int true "ID новости"
// @Success 200 {object} helpers.Response
// @Router /admin/news/{id}/comments [delete]
func (h *CommentHandler) DeleteByNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.comments.DeleteByNewsID(r.Context(), newsID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"news_id": newsID})
}
