package routes

import (
	"net/http"

	"news-management/internal/handlers"
	"news-management/internal/i18n"
	"news-management/internal/middleware"
	"news-management/internal/models"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	tr *i18n.Translator,
	tokens middleware.TokenParser,
	metrics *middleware.HTTPMetrics,
	loginLimiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	newsHandler *handlers.NewsHandler,
	commentHandler *handlers.CommentHandler,
	tagHandler *handlers.TagHandler,
	authorHandler *handlers.AuthorHandler,
	logsHandler *handlers.AdminLogsHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer(tr), middleware.Locale(tr), middleware.Logging)
	if metrics != nil {
		router.Use(metrics.Middleware)
	}

	api := router.PathPrefix("/api/v2").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	login := http.Handler(http.HandlerFunc(authHandler.Login))
	if loginLimiter != nil {
		login = loginLimiter.Middleware(login)
	}
	api.Handle("/auth/login", login).Methods("POST")

	api.HandleFunc("/news", newsHandler.List).Methods("GET")
	api.HandleFunc("/news/search", newsHandler.Search).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}", newsHandler.Get).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}/comments", commentHandler.ByNews).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}/tags", tagHandler.ByNews).Methods("GET")

	api.HandleFunc("/tags", tagHandler.List).Methods("GET")
	api.HandleFunc("/tags/search", tagHandler.Search).Methods("GET")
	api.HandleFunc("/tags/{id:[0-9]+}", tagHandler.Get).Methods("GET")
	api.HandleFunc("/tags/{id:[0-9]+}/news", newsHandler.ByTag).Methods("GET")

	api.HandleFunc("/authors", authorHandler.List).Methods("GET")
	api.HandleFunc("/authors/search", authorHandler.Search).Methods("GET")
	api.HandleFunc("/authors/{id:[0-9]+}", authorHandler.Get).Methods("GET")
	api.HandleFunc("/authors/{id:[0-9]+}/news", newsHandler.ByAuthor).Methods("GET")

	api.HandleFunc("/comments", commentHandler.List).Methods("GET")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Get).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(tokens, tr), middleware.AdminFastLane)

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	protected.Handle("/comments", middleware.AnyRole(tr, models.RoleUser, models.RoleAdmin)(
		http.HandlerFunc(commentHandler.Create))).Methods("POST")

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole(tr, models.RoleAdmin))

	admin.HandleFunc("/news", newsHandler.Create).Methods("POST")
	admin.HandleFunc("/news/{id:[0-9]+}", newsHandler.Update).Methods("PATCH")
	admin.HandleFunc("/news/{id:[0-9]+}", newsHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/news/{id:[0-9]+}/comments", commentHandler.DeleteByNews).Methods("DELETE")
	admin.HandleFunc("/news/{id:[0-9]+}/tags/{tagId:[0-9]+}", tagHandler.Attach).Methods("POST")
	admin.HandleFunc("/news/{id:[0-9]+}/tags/{tagId:[0-9]+}", tagHandler.Detach).Methods("DELETE")

	admin.HandleFunc("/tags", tagHandler.Create).Methods("POST")
	admin.HandleFunc("/tags/{id:[0-9]+}", tagHandler.Update).Methods("PATCH")
	admin.HandleFunc("/tags/{id:[0-9]+}", tagHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/tags/{id:[0-9]+}/news", tagHandler.DetachFromAllNews).Methods("DELETE")

	admin.HandleFunc("/authors", authorHandler.Create).Methods("POST")
	admin.HandleFunc("/authors/{id:[0-9]+}", authorHandler.Update).Methods("PATCH")
	admin.HandleFunc("/authors/{id:[0-9]+}", authorHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Update).Methods("PATCH")
	admin.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/logs", logsHandler.Logs).Methods("GET")
	admin.HandleFunc("/logs/days", logsHandler.Days).Methods("GET")
	admin.HandleFunc("/logs/stats", logsHandler.Stats).Methods("GET")
}
