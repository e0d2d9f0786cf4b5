package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/cache"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/utils"
	"news-management/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	repo      UserRepo
	blacklist cache.TokenBlacklist
	secret    string
	ttl       time.Duration
	now       Clock
}

func NewAuthService(repo UserRepo, blacklist cache.TokenBlacklist, secret string, ttl time.Duration, now Clock) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{repo: repo, blacklist: blacklist, secret: secret, ttl: ttl, now: now}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	log := logger.WithCtx(ctx)
	username = strings.TrimSpace(username)
	log.Info("Регистрация пользователя (service)", zap.String("username", username))

	if err := validation.ValidateCredentials(username, password); err != nil {
		return nil, err
	}
	taken, err := s.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		log.Error("Ошибка проверки username", zap.Error(err))
		return nil, wrap("auth.Register", err)
	}
	if taken {
		return nil, apperr.IncorrectParameter(apperr.UsernameTaken)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, wrap("auth.Register", err)
	}

	user := &models.User{Username: username, PasswordHash: hashed, Role: models.RoleUser}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		log.Error("Ошибка создания пользователя", zap.Error(err))
		return nil, wrap("auth.Register", err)
	}
	log.Info("Пользователь зарегистрирован (service)", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login возвращает access-токен. Неизвестный пользователь и неверный пароль
// дают одну и ту же ошибку BAD_CREDENTIALS.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", wrap("auth.Login", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверные учётные данные (service)", zap.String("username", username))
		return "", apperr.IncorrectParameter(apperr.BadCredentials)
	}

	token, err := utils.GenerateToken(s.secret, user.ID, user.Role, uuid.NewString(), s.now(), s.ttl)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", wrap("auth.Login", err)
	}
	log.Info("Вход выполнен (service)", zap.Int64("user_id", user.ID))
	return token, nil
}

// ParseToken проверяет подпись, срок действия и отзыв токена.
func (s *AuthService) ParseToken(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.ParseToken(s.secret, token, s.now)
	if err != nil {
		return nil, err
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, wrap("auth.ParseToken", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout отзывает токен до момента его истечения.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.ParseToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenRevoked) {
			return nil
		}
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.WithCtx(ctx).Error("Ошибка отзыва токена", zap.Error(err))
		return wrap("auth.Logout", err)
	}
	logger.WithCtx(ctx).Info("Выход пользователя (service)", zap.Int64("user_id", claims.UserID))
	return nil
}
