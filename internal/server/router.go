package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/http/handlers"
	"github.com/yungbote/booklibrary-portal/internal/http/middleware"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

type RouterConfig struct {
	Log           *logger.Logger
	TemplatesGlob string

	HomeHandler      *handlers.HomeHandler
	BookHandler      *handlers.BookHandler
	AuthorHandler    *handlers.AuthorHandler
	CategoryHandler  *handlers.CategoryHandler
	BorrowingHandler *handlers.BorrowingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS())

	if cfg.TemplatesGlob != "" {
		router.LoadHTMLGlob(cfg.TemplatesGlob)
	}

	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", cfg.HomeHandler.Index)
	router.GET("/error", cfg.HomeHandler.Error)

	books := router.Group("/books")
	{
		books.GET("", cfg.BookHandler.Index)
		books.GET("/create", cfg.BookHandler.CreateForm)
		books.POST("/create", cfg.BookHandler.Create)
		books.GET("/details/:id", cfg.BookHandler.Details)
		books.GET("/edit/:id", cfg.BookHandler.EditForm)
		books.POST("/edit/:id", cfg.BookHandler.Edit)
		books.GET("/delete/:id", cfg.BookHandler.DeleteForm)
		books.POST("/delete/:id", cfg.BookHandler.Delete)
	}

	authors := router.Group("/authors")
	{
		authors.GET("", cfg.AuthorHandler.Index)
		authors.GET("/create", cfg.AuthorHandler.CreateForm)
		authors.POST("/create", cfg.AuthorHandler.Create)
		authors.GET("/details/:id", cfg.AuthorHandler.Details)
		authors.GET("/edit/:id", cfg.AuthorHandler.EditForm)
		authors.POST("/edit/:id", cfg.AuthorHandler.Edit)
		authors.GET("/delete/:id", cfg.AuthorHandler.DeleteForm)
		authors.POST("/delete/:id", cfg.AuthorHandler.Delete)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.Index)
		categories.GET("/create", cfg.CategoryHandler.CreateForm)
		categories.POST("/create", cfg.CategoryHandler.Create)
		categories.GET("/details/:id", cfg.CategoryHandler.Details)
		categories.GET("/edit/:id", cfg.CategoryHandler.EditForm)
		categories.POST("/edit/:id", cfg.CategoryHandler.Edit)
		categories.GET("/delete/:id", cfg.CategoryHandler.DeleteForm)
		categories.POST("/delete/:id", cfg.CategoryHandler.Delete)
	}

	borrowings := router.Group("/borrowings")
	{
		borrowings.GET("", cfg.BorrowingHandler.Index)
		borrowings.GET("/create", cfg.BorrowingHandler.CreateForm)
		borrowings.POST("/create", cfg.BorrowingHandler.Create)
		borrowings.GET("/details/:id", cfg.BorrowingHandler.Details)
		borrowings.GET("/edit/:id", cfg.BorrowingHandler.EditForm)
		borrowings.POST("/edit/:id", cfg.BorrowingHandler.Edit)
		borrowings.GET("/delete/:id", cfg.BorrowingHandler.DeleteForm)
		borrowings.POST("/delete/:id", cfg.BorrowingHandler.Delete)
		borrowings.POST("/return/:id", cfg.BorrowingHandler.Return)
		borrowings.GET("/status/:id", cfg.BorrowingHandler.Status)
	}

	return router
}
