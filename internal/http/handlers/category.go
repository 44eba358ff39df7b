package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/http/flash"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
	"github.com/yungbote/booklibrary-portal/internal/services"
)

type CategoryHandler struct {
	log        *logger.Logger
	categories services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:        log.With("handler", "CategoryHandler"),
		categories: categories,
	}
}

// GET /categories
func (h *CategoryHandler) Index(c *gin.Context) {
	var errMsg string
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.log.Warn("category list failed", "error", err)
		errMsg = "Unable to load book categories."
		categories = []domain.BookCategory{}
	}
	c.HTML(http.StatusOK, "categories/index", gin.H{
		"Categories":   categories,
		"ErrorMessage": errMsg,
		"Flash":        flash.Take(c),
	})
}

// GET /categories/details/:id
func (h *CategoryHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		if services.CodeOf(err) == services.CodeNotFound {
			c.HTML(http.StatusNotFound, "error", gin.H{"Message": "Category not found."})
			return
		}
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "categories/details", gin.H{"Category": category})
}

// GET /categories/create
func (h *CategoryHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "categories/form", gin.H{"Category": domain.BookCategory{}})
}

// POST /categories/create
func (h *CategoryHandler) Create(c *gin.Context) {
	var category domain.BookCategory
	if err := c.ShouldBind(&category); err != nil {
		c.HTML(http.StatusBadRequest, "categories/form", gin.H{
			"Category":     category,
			"ErrorMessage": "Invalid form input: " + err.Error(),
		})
		return
	}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		c.HTML(http.StatusBadRequest, "categories/form", gin.H{
			"Category":     category,
			"ErrorMessage": "Error creating category: " + err.Error(),
		})
		return
	}
	flash.Success(c, "Book category created successfully!")
	c.Redirect(http.StatusSeeOther, "/categories")
}

// GET /categories/edit/:id
func (h *CategoryHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "categories/form", gin.H{"Category": category})
}

// POST /categories/edit/:id
func (h *CategoryHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	var category domain.BookCategory
	if err := c.ShouldBind(&category); err != nil {
		c.HTML(http.StatusBadRequest, "categories/form", gin.H{
			"Category":     category,
			"ErrorMessage": "Invalid form input: " + err.Error(),
		})
		return
	}
	if err := h.categories.Update(c.Request.Context(), id, category); err != nil {
		if services.CodeOf(err) == services.CodeIdentifierMismatch {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}
		c.HTML(http.StatusBadRequest, "categories/form", gin.H{
			"Category":     category,
			"ErrorMessage": "Error updating category: " + err.Error(),
		})
		return
	}
	flash.Success(c, "Book category updated successfully!")
	c.Redirect(http.StatusSeeOther, "/categories")
}

// GET /categories/delete/:id
func (h *CategoryHandler) DeleteForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "categories/delete", gin.H{"Category": category})
}

// POST /categories/delete/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		flash.Error(c, "Error deleting category.")
	} else {
		flash.Success(c, "Book category deleted successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/categories")
}
