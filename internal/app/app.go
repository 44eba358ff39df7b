package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/http/handlers"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
	"github.com/yungbote/booklibrary-portal/internal/server"
	"github.com/yungbote/booklibrary-portal/internal/services"
)

type App struct {
	Log    *logger.Logger
	Cfg    Config
	Router *gin.Engine
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	client, err := backend.New(log, backend.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
		Routes:  cfg.Routes,
	})
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init resource client: %w", err)
	}

	bookService := services.NewBookService(log, client)
	authorService := services.NewAuthorService(log, client)
	categoryService := services.NewCategoryService(log, client)
	lookupService := services.NewLookupService(log, client)
	borrowingService := services.NewBorrowingService(log, client)

	router := server.NewRouter(server.RouterConfig{
		Log:              log,
		TemplatesGlob:    cfg.TemplatesGlob,
		HomeHandler:      handlers.NewHomeHandler(log),
		BookHandler:      handlers.NewBookHandler(log, bookService, lookupService),
		AuthorHandler:    handlers.NewAuthorHandler(log, authorService),
		CategoryHandler:  handlers.NewCategoryHandler(log, categoryService),
		BorrowingHandler: handlers.NewBorrowingHandler(log, borrowingService, lookupService),
	})

	return &App{Log: log, Cfg: cfg, Router: router}, nil
}

func (a *App) Run() error {
	addr := ":" + a.Cfg.Port
	a.Log.Info("server listening", "addr", addr, "backend", a.Cfg.BackendBaseURL)
	return a.Router.Run(addr)
}
