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

type AuthorService interface {
	Create(ctx context.Context, a *models.Author) (bool, error)
	Update(ctx context.Context, a *models.Author) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.Author, error)
	FindAll(ctx context.Context) ([]models.Author, error)
	FindByPartOfName(ctx context.Context, part string) ([]models.Author, error)
	GetPagination(list []models.Author, size, page int) pagination.Pagination[models.Author]
}

type AuthorHandler struct {
	base
	authors AuthorService
}

func NewAuthorHandler(authors AuthorService, tr *i18n.Translator) *AuthorHandler {
	return &AuthorHandler{base: base{tr: tr}, authors: authors}
}

type authorRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary Список авторов
// @Tags authors
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param size query int false "Размер страницы"
// @Success 200 {object} pagination.Pagination[models.Author]
// @Router /authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.authors.FindAll(r.Context())
	h.page(w, r, list, err)
}

// Search godoc
// @Summary Поиск авторов по части имени
// @Tags authors
// @Produce json
// @Param name query string true "Часть имени"
// @Success 200 {object} pagination.Pagination[models.Author]
// @Failure 400 {object} helpers.Response
// @Router /authors/search [get]
func (h *AuthorHandler) Search(w http.ResponseWriter, r *http.Request) {
	list, err := h.authors.FindByPartOfName(r.Context(), r.URL.Query().Get("name"))
	h.page(w, r, list, err)
}

func (h *AuthorHandler) page(w http.ResponseWriter, r *http.Request, list []models.Author, err error) {
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	p := parseListParams(r)
	helpers.JSON(w, http.StatusOK, h.authors.GetPagination(list, p.size, p.page))
}

// Get godoc
// @Summary Автор по ID
// @Tags authors
// @Produce json
// @Param id path int true "ID автора"
// @Success 200 {object} models.Author
// @Failure 404 {object} helpers.Response
// @Router /authors/{id} [get]
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.authors.FindByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if a == nil {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundAuthor)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Create godoc
// @Summary Добавить автора (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body authorRequest true "Имя автора"
// @Success 201 {object} models.Author
// @Failure 400 {object} helpers.Response
// @Router /admin/authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if !h.decode(w, r, &req) {
		return
	}
	var a models.Author
	if err := copier.Copy(&a, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	if _, err := h.authors.Create(r.Context(), &a); err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// Update godoc
// @Summary Переименовать автора (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID автора"
// @Param input body authorRequest true "Новое имя"
// @Success 200 {object} models.Author
// @Failure 404 {object} helpers.Response
// @Router /admin/authors/{id} [patch]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req authorRequest
	if !h.decode(w, r, &req) {
		return
	}
	a := models.Author{ID: id, Name: req.Name}
	updated, err := h.authors.Update(r.Context(), &a)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !updated {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundAuthor)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Delete godoc
// @Summary Удалить автора без новостей (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Param id path int true "ID автора"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response "У автора есть новости"
// @Failure 404 {object} helpers.Response
// @Router /admin/authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.authors.DeleteByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if !deleted {
		h.fail(w, r, http.StatusNotFound, apperr.NotFoundAuthor)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"id": id})
}
