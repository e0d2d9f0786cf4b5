package handlers

import (
	"context"
	"net/http"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/reqctx"
	helpers "news-management/internal/utils/helpres"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	base
	auth AuthService
}

func NewAuthHandler(auth AuthService, tr *i18n.Translator) *AuthHandler {
	return &AuthHandler{base: base{tr: tr}, auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body credentialsRequest true "Данные регистрации"
// @Success 201 {object} models.User
// @Failure 400 {object} helpers.Response "Ошибка валидации"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}
	logger.WithCtx(r.Context()).Info("Регистрация пользователя", zap.String("username", req.Username))

	user, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body credentialsRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {object} helpers.Response "Неверный логин или пароль"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}
	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("Успешный вход", zap.String("username", req.Username))
	helpers.JSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "Bearer"})
}

// Logout godoc
// @Summary Выход: отзыв текущего токена
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := reqctx.GetToken(r.Context())
	if !ok || token == "" {
		h.fail(w, r, http.StatusUnauthorized, apperr.Unauthorized)
		return
	}
	if err := h.auth.Logout(r.Context(), token); err != nil {
		h.respondErr(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("Токен отозван")
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
