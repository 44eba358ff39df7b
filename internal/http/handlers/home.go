package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/http/flash"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

type HomeHandler struct {
	log *logger.Logger
}

func NewHomeHandler(log *logger.Logger) *HomeHandler {
	return &HomeHandler{log: log.With("handler", "HomeHandler")}
}

// GET /
func (h *HomeHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{"Flash": flash.Take(c)})
}

// GET /error — the safe landing page failed operations redirect to.
func (h *HomeHandler) Error(c *gin.Context) {
	c.HTML(http.StatusOK, "error", gin.H{
		"Message": "Something went wrong talking to the library service. Please try again.",
	})
}
