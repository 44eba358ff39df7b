package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func redirectError(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/error")
}
