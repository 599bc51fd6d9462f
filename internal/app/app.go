package app

import (
	"newsportal/internal/config"
	"newsportal/internal/db"
	"newsportal/internal/handlers"
	"newsportal/internal/repository"
	"newsportal/internal/routes"
	"newsportal/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	newsRepo := repository.NewNewsRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	// Сервисы
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, newsRepo)
	newsService := services.NewNewsService(newsRepo, categoryRepo, userRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, newsRepo, userRepo)

	// Хендлеры
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	newsHandler := handlers.NewNewsHandler(newsService)
	commentHandler := handlers.NewCommentHandler(commentService)
	healthHandler := handlers.NewHealthHandler()

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, userHandler, categoryHandler, newsHandler, commentHandler, healthHandler)

	return router, nil
}
