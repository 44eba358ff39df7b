package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/http/flash"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
	"github.com/yungbote/booklibrary-portal/internal/services"
)

type AuthorHandler struct {
	log     *logger.Logger
	authors services.AuthorService
}

func NewAuthorHandler(log *logger.Logger, authors services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		log:     log.With("handler", "AuthorHandler"),
		authors: authors,
	}
}

// GET /authors
func (h *AuthorHandler) Index(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		h.log.Warn("author list failed", "error", err)
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "authors/index", gin.H{
		"Authors": authors,
		"Flash":   flash.Take(c),
	})
}

// GET /authors/details/:id
func (h *AuthorHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "authors/details", gin.H{"Author": author})
}

// GET /authors/create
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "authors/form", gin.H{"Author": domain.Author{}})
}

// POST /authors/create
func (h *AuthorHandler) Create(c *gin.Context) {
	var author domain.Author
	if err := c.ShouldBind(&author); err != nil {
		c.HTML(http.StatusBadRequest, "authors/form", gin.H{
			"Author":       author,
			"ErrorMessage": "Invalid form input: " + err.Error(),
		})
		return
	}
	if err := h.authors.Create(c.Request.Context(), author); err != nil {
		redirectError(c)
		return
	}
	flash.Success(c, "Author created successfully!")
	c.Redirect(http.StatusSeeOther, "/authors")
}

// GET /authors/edit/:id
func (h *AuthorHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "authors/form", gin.H{"Author": author})
}

// POST /authors/edit/:id
func (h *AuthorHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	var author domain.Author
	if err := c.ShouldBind(&author); err != nil {
		c.HTML(http.StatusBadRequest, "authors/form", gin.H{
			"Author":       author,
			"ErrorMessage": "Invalid form input: " + err.Error(),
		})
		return
	}
	if err := h.authors.Update(c.Request.Context(), id, author); err != nil {
		if services.CodeOf(err) == services.CodeIdentifierMismatch {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}
		redirectError(c)
		return
	}
	flash.Success(c, "Author updated successfully!")
	c.Redirect(http.StatusSeeOther, "/authors")
}

// GET /authors/delete/:id
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "authors/delete", gin.H{"Author": author})
}

// POST /authors/delete/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		redirectError(c)
		return
	}
	flash.Success(c, "Author deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/authors")
}
