package app

import (
	"context"
	"time"

	"news-management/internal/cache"
	"news-management/internal/config"
	"news-management/internal/db"
	"news-management/internal/handlers"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	"news-management/internal/middleware"
	"news-management/internal/repository"
	"news-management/internal/routes"
	"news-management/internal/services"
	"news-management/internal/validation"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router   *mux.Router
	Registry *prometheus.Registry

	closers []func()
}

// Close освобождает пул БД и клиент Redis.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pool.Close)
	conn := db.SQL(pool)

	tagValidator, err := validation.NewTagValidator(validation.TagConstraints{
		MinNameLength: cfg.TagNameMin,
		MaxNameLength: cfg.TagNameMax,
		NamePattern:   cfg.TagNamePattern,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	blacklist := newBlacklist(ctx, cfg)
	a.closers = append(a.closers, func() { _ = blacklist.Close() })

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	newsRepo := repository.NewNewsRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)
	tagRepo := repository.NewTagRepository(conn)
	authorRepo := repository.NewAuthorRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo, blacklist, cfg.JWTSecret, cfg.AccessTokenTTL, time.Now)
	newsService := services.NewNewsService(newsRepo, commentRepo, tagRepo, authorRepo, time.Now)
	commentService := services.NewCommentService(commentRepo, newsRepo, time.Now)
	tagService := services.NewTagService(tagRepo, newsRepo, tagValidator)
	authorService := services.NewAuthorService(authorRepo, newsRepo)

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, tr)
	newsHandler := handlers.NewNewsHandler(newsService, tr)
	commentHandler := handlers.NewCommentHandler(commentService, tr)
	tagHandler := handlers.NewTagHandler(tagService, tr)
	authorHandler := handlers.NewAuthorHandler(authorService, tr)
	logsHandler := handlers.NewAdminLogsHandler(cfg.LogDir, tr)

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewHTTPMetrics(a.Registry)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst, tr)
	go loginLimiter.Cleanup(ctx, time.Minute, 10*time.Minute)

	// Маршруты
	a.Router = mux.NewRouter()
	routes.InitRoutes(a.Router, tr, authService, metrics, loginLimiter,
		authHandler, newsHandler, commentHandler, tagHandler, authorHandler, logsHandler)

	return a, nil
}

// newBlacklist подключает Redis; без него отозванные токены живут в памяти процесса.
func newBlacklist(ctx context.Context, cfg *config.Config) cache.TokenBlacklist {
	if cfg.RedisAddr != "" {
		bl, err := cache.NewRedisBlacklist(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, "")
		if err == nil {
			logger.Log.Info("Blacklist токенов в Redis", zap.String("addr", cfg.RedisAddr))
			return bl
		}
		logger.Log.Warn("Redis недоступен, blacklist в памяти", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return cache.NewMemoryBlacklist(time.Now)
}
