package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	"news-management/internal/pagination"
	"news-management/internal/reqctx"
	helpers "news-management/internal/utils/helpres"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// base содержит переводчик и общий разбор запроса.
type base struct {
	tr *i18n.Translator
}

func (b base) locale(r *http.Request) string {
	locale, _ := reqctx.GetLocale(r.Context())
	return locale
}

func (b base) fail(w http.ResponseWriter, r *http.Request, status int, code string, args ...any) {
	helpers.ErrorCode(w, status, code, b.tr.Message(b.locale(r), code, args...))
}

// respondErr переводит ошибку сервиса в HTTP-ответ.
func (b base) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	if ip, ok := apperr.IsIncorrectParameter(err); ok {
		status := http.StatusBadRequest
		if ip.Code == apperr.BadCredentials {
			status = http.StatusUnauthorized
		}
		logger.WithCtx(r.Context()).Warn("Некорректный параметр", zap.String("code", ip.Code))
		b.fail(w, r, status, ip.Code, ip.Args...)
		return
	}
	logger.WithCtx(r.Context()).Error("Ошибка обработки запроса", zap.String("path", r.URL.Path), zap.Error(err))
	b.fail(w, r, http.StatusInternalServerError, apperr.InternalError)
}

// decode читает JSON и проверяет теги validate.
func (b base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON", zap.Error(err))
		b.fail(w, r, http.StatusBadRequest, apperr.BadRequestBody, "invalid JSON")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var vErrs validator.ValidationErrors
		detail := err.Error()
		if errors.As(err, &vErrs) {
			parts := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				parts = append(parts, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
			}
			detail = strings.Join(parts, ", ")
		}
		logger.WithCtx(r.Context()).Warn("Тело запроса не прошло проверку", zap.String("detail", detail))
		b.fail(w, r, http.StatusBadRequest, apperr.BadRequestBody, detail)
		return false
	}
	return true
}

// pathID разбирает числовую переменную пути; при ошибке отвечает 400.
func (b base) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		b.fail(w, r, http.StatusBadRequest, apperr.BadID)
		return 0, false
	}
	return id, true
}

type listParams struct {
	page, size int
	sort       string
	desc       bool
}

func parseListParams(r *http.Request) listParams {
	q := r.URL.Query()
	p := listParams{page: 1, size: pagination.DefaultPageSize, sort: q.Get("sort")}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		p.page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		p.size = v
	}
	p.desc = strings.EqualFold(q.Get("order"), "desc")
	return p
}
