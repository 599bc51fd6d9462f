package routes

import (
	"newsportal/internal/handlers"
	"newsportal/internal/middleware"

	"github.com/gorilla/mux"
)

// InitRoutes регистрирует по одной процедуре на операцию:
// POST /rpc/<сущность>.<операция>, вход и выход — JSON.
func InitRoutes(
	router *mux.Router,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	newsHandler *handlers.NewsHandler,
	commentHandler *handlers.CommentHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	rpc := router.PathPrefix("/rpc").Subrouter()

	rpc.HandleFunc("/health.check", healthHandler.Check).Methods("POST")

	// --- Пользователи ---
	rpc.HandleFunc("/user.create", userHandler.Create).Methods("POST")
	rpc.HandleFunc("/user.list", userHandler.List).Methods("POST")
	rpc.HandleFunc("/user.getById", userHandler.GetByID).Methods("POST")
	rpc.HandleFunc("/user.update", userHandler.Update).Methods("POST")
	rpc.HandleFunc("/user.delete", userHandler.Delete).Methods("POST")
	rpc.HandleFunc("/user.login", userHandler.Login).Methods("POST")

	// --- Категории ---
	rpc.HandleFunc("/category.create", categoryHandler.Create).Methods("POST")
	rpc.HandleFunc("/category.list", categoryHandler.List).Methods("POST")
	rpc.HandleFunc("/category.getById", categoryHandler.GetByID).Methods("POST")
	rpc.HandleFunc("/category.getBySlug", categoryHandler.GetBySlug).Methods("POST")
	rpc.HandleFunc("/category.update", categoryHandler.Update).Methods("POST")
	rpc.HandleFunc("/category.delete", categoryHandler.Delete).Methods("POST")

	// --- Новости ---
	rpc.HandleFunc("/news.create", newsHandler.Create).Methods("POST")
	rpc.HandleFunc("/news.list", newsHandler.List).Methods("POST")
	rpc.HandleFunc("/news.listAll", newsHandler.ListAll).Methods("POST")
	rpc.HandleFunc("/news.getById", newsHandler.GetByID).Methods("POST")
	rpc.HandleFunc("/news.getBySlug", newsHandler.GetBySlug).Methods("POST")
	rpc.HandleFunc("/news.listByCategory", newsHandler.ListByCategory).Methods("POST")
	rpc.HandleFunc("/news.featured", newsHandler.Featured).Methods("POST")
	rpc.HandleFunc("/news.update", newsHandler.Update).Methods("POST")
	rpc.HandleFunc("/news.delete", newsHandler.Delete).Methods("POST")
	rpc.HandleFunc("/news.search", newsHandler.Search).Methods("POST")

	// --- Комментарии ---
	rpc.HandleFunc("/comment.create", commentHandler.Create).Methods("POST")
	rpc.HandleFunc("/comment.listByNews", commentHandler.ListByNews).Methods("POST")
	rpc.HandleFunc("/comment.listAll", commentHandler.ListAll).Methods("POST")
	rpc.HandleFunc("/comment.listPending", commentHandler.ListPending).Methods("POST")
	rpc.HandleFunc("/comment.update", commentHandler.Update).Methods("POST")
	rpc.HandleFunc("/comment.moderate", commentHandler.Moderate).Methods("POST")
	rpc.HandleFunc("/comment.delete", commentHandler.Delete).Methods("POST")
}
