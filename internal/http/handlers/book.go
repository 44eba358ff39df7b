package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/http/flash"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
	"github.com/yungbote/booklibrary-portal/internal/services"
)

type BookHandler struct {
	log     *logger.Logger
	books   services.BookService
	lookups services.LookupService
}

func NewBookHandler(log *logger.Logger, books services.BookService, lookups services.LookupService) *BookHandler {
	return &BookHandler{
		log:     log.With("handler", "BookHandler"),
		books:   books,
		lookups: lookups,
	}
}

// GET /books
func (h *BookHandler) Index(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		h.log.Warn("book list failed", "error", err)
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "books/index", gin.H{
		"Books": books,
		"Flash": flash.Take(c),
	})
}

// GET /books/details/:id
func (h *BookHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	book, err := h.books.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("book detail failed", "book_id", id, "error", err)
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "books/details", gin.H{"Book": book})
}

// GET /books/create
func (h *BookHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, domain.Book{}, "")
}

// POST /books/create
func (h *BookHandler) Create(c *gin.Context) {
	var book domain.Book
	if err := c.ShouldBind(&book); err != nil {
		h.renderForm(c, book, "Invalid form input: "+err.Error())
		return
	}
	if err := h.books.Create(c.Request.Context(), book); err != nil {
		h.renderForm(c, book, "Error creating book: "+err.Error())
		return
	}
	flash.Success(c, "Book created successfully!")
	c.Redirect(http.StatusSeeOther, "/books")
}

// GET /books/edit/:id
func (h *BookHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	book, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("book edit load failed", "book_id", id, "error", err)
		redirectError(c)
		return
	}
	h.renderForm(c, *book, "")
}

// POST /books/edit/:id
func (h *BookHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	var book domain.Book
	if err := c.ShouldBind(&book); err != nil {
		h.renderForm(c, book, "Invalid form input: "+err.Error())
		return
	}
	if err := h.books.Update(c.Request.Context(), id, book); err != nil {
		if services.CodeOf(err) == services.CodeIdentifierMismatch {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}
		h.renderForm(c, book, "Error updating book: "+err.Error())
		return
	}
	flash.Success(c, "Book updated successfully!")
	c.Redirect(http.StatusSeeOther, "/books")
}

// GET /books/delete/:id
func (h *BookHandler) DeleteForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	book, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "books/delete", gin.H{"Book": book})
}

// POST /books/delete/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		flash.Error(c, "Error deleting book.")
	} else {
		flash.Success(c, "Book deleted successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/books")
}

// Validation and backend failures re-render the form, always with freshly
// reloaded lookup lists.
func (h *BookHandler) renderForm(c *gin.Context, book domain.Book, errMsg string) {
	ctx := c.Request.Context()
	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "books/form", gin.H{
		"Book":         book,
		"Authors":      h.lookups.Authors(ctx),
		"Categories":   h.lookups.Categories(ctx),
		"ErrorMessage": errMsg,
	})
}
