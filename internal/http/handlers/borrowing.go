package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/http/flash"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
	"github.com/yungbote/booklibrary-portal/internal/services"
)

type BorrowingHandler struct {
	log        *logger.Logger
	borrowings services.BorrowingService
	lookups    services.LookupService
}

func NewBorrowingHandler(log *logger.Logger, borrowings services.BorrowingService, lookups services.LookupService) *BorrowingHandler {
	return &BorrowingHandler{
		log:        log.With("handler", "BorrowingHandler"),
		borrowings: borrowings,
		lookups:    lookups,
	}
}

// borrowingForm carries the raw form values; dates arrive as strings from
// datetime-local inputs and are parsed here, empty meaning unset.
type borrowingForm struct {
	BookID         int    `form:"bookId"`
	BorrowerName   string `form:"borrowerName"`
	BorrowerNumber string `form:"borrowerNumber"`
	BorrowDate     string `form:"borrowDate"`
	ReturnDate     string `form:"returnDate"`
	Status         string `form:"status"`
}

func (f borrowingForm) record() (domain.BookBorrowing, error) {
	rec := domain.BookBorrowing{
		BookID:         f.BookID,
		BorrowerName:   strings.TrimSpace(f.BorrowerName),
		BorrowerNumber: strings.TrimSpace(f.BorrowerNumber),
		Status:         strings.TrimSpace(f.Status),
	}
	borrowDate, err := parseFormTime(f.BorrowDate)
	if err != nil {
		return rec, fmt.Errorf("invalid borrow date %q", f.BorrowDate)
	}
	if borrowDate != nil {
		rec.BorrowDate = *borrowDate
	}
	returnDate, err := parseFormTime(f.ReturnDate)
	if err != nil {
		return rec, fmt.Errorf("invalid return date %q", f.ReturnDate)
	}
	rec.ReturnDate = returnDate
	return rec, nil
}

func parseFormTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized time %q", raw)
}

// GET /borrowings
func (h *BorrowingHandler) Index(c *gin.Context) {
	var errMsg string
	recs, err := h.borrowings.List(c.Request.Context())
	if err != nil {
		h.log.Warn("borrowing list failed", "error", err)
		errMsg = "Unable to load borrowing records."
		recs = []domain.BookBorrowing{}
	}
	c.HTML(http.StatusOK, "borrowings/index", gin.H{
		"Borrowings":   recs,
		"ErrorMessage": errMsg,
		"Flash":        flash.Take(c),
	})
}

// GET /borrowings/details/:id
func (h *BorrowingHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	rec, err := h.borrowings.Get(c.Request.Context(), id)
	if err != nil {
		if services.CodeOf(err) == services.CodeNotFound {
			c.HTML(http.StatusNotFound, "error", gin.H{"Message": "Borrowing record not found."})
			return
		}
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "borrowings/details", gin.H{"Borrowing": rec})
}

// GET /borrowings/create
func (h *BorrowingHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "borrowings/form", gin.H{
		"Borrowing": domain.BookBorrowing{
			BorrowDate: time.Now(),
			Status:     domain.StatusBorrowed,
		},
		"Books": h.lookups.Books(c.Request.Context()),
	})
}

// POST /borrowings/create
func (h *BorrowingHandler) Create(c *gin.Context) {
	var form borrowingForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Validation failed: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/borrowings")
		return
	}
	rec, err := form.record()
	if err != nil {
		flash.Error(c, "Validation failed: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/borrowings")
		return
	}
	forwarded, err := h.borrowings.Create(c.Request.Context(), rec)
	if err != nil {
		switch services.CodeOf(err) {
		case services.CodeValidationFailed:
			flash.Error(c, "Validation failed: "+err.Error())
		default:
			flash.Error(c, "Error creating record: "+err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/borrowings")
		return
	}
	flash.Success(c, fmt.Sprintf("Book borrowing record created successfully! Status: %s", forwarded.Status))
	c.Redirect(http.StatusSeeOther, "/borrowings")
}

// GET /borrowings/edit/:id
func (h *BorrowingHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	rec, err := h.borrowings.Get(c.Request.Context(), id)
	if err != nil {
		if services.CodeOf(err) == services.CodeNotFound {
			c.HTML(http.StatusNotFound, "error", gin.H{"Message": "Borrowing record not found."})
			return
		}
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "borrowings/form", gin.H{
		"Borrowing": rec,
		"Books":     h.lookups.Books(c.Request.Context()),
		"Edit":      true,
		"EditID":    id,
	})
}

// POST /borrowings/edit/:id
func (h *BorrowingHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	var form borrowingForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderEditForm(c, id, domain.BookBorrowing{BookID: form.BookID}, "Invalid form input: "+err.Error())
		return
	}
	rec, err := form.record()
	if err != nil {
		h.renderEditForm(c, id, rec, "Validation failed: "+err.Error())
		return
	}
	if err := h.borrowings.Edit(c.Request.Context(), id, rec); err != nil {
		switch services.CodeOf(err) {
		case services.CodeIdentifierMismatch:
			c.String(http.StatusBadRequest, "Bad Request")
		case services.CodeValidationFailed:
			h.renderEditForm(c, id, rec, "Validation failed: "+err.Error())
		default:
			h.renderEditForm(c, id, rec, "Error updating record: "+err.Error())
		}
		return
	}
	flash.Success(c, "Book borrowing record updated successfully!")
	c.Redirect(http.StatusSeeOther, "/borrowings")
}

// Re-renders the edit form with a freshly reloaded book list, never the
// one the stale page was rendered from.
func (h *BorrowingHandler) renderEditForm(c *gin.Context, id int, rec domain.BookBorrowing, errMsg string) {
	c.HTML(http.StatusBadRequest, "borrowings/form", gin.H{
		"Borrowing":    rec,
		"Books":        h.lookups.Books(c.Request.Context()),
		"Edit":         true,
		"EditID":       id,
		"ErrorMessage": errMsg,
	})
}

// GET /borrowings/delete/:id
func (h *BorrowingHandler) DeleteForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	rec, err := h.borrowings.Get(c.Request.Context(), id)
	if err != nil {
		if services.CodeOf(err) == services.CodeNotFound {
			c.HTML(http.StatusNotFound, "error", gin.H{"Message": "Borrowing record not found."})
			return
		}
		redirectError(c)
		return
	}
	c.HTML(http.StatusOK, "borrowings/delete", gin.H{"Borrowing": rec})
}

// POST /borrowings/delete/:id
func (h *BorrowingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	if err := h.borrowings.Delete(c.Request.Context(), id); err != nil {
		flash.Error(c, "Error deleting record.")
	} else {
		flash.Success(c, "Book borrowing record deleted successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/borrowings")
}

// POST /borrowings/return/:id
func (h *BorrowingHandler) Return(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		redirectError(c)
		return
	}
	if err := h.borrowings.Return(c.Request.Context(), id); err != nil {
		flash.Error(c, "Error returning book: "+err.Error())
	} else {
		flash.Success(c, "Book returned successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/borrowings")
}

// GET /borrowings/status/:id — JSON side channel for UI hints. An
// unparseable identifier reads as "not borrowed", same as any other
// uncertainty.
func (h *BorrowingHandler) Status(c *gin.Context) {
	bookID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || bookID <= 0 {
		c.JSON(http.StatusOK, gin.H{"isBorrowed": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"isBorrowed": h.borrowings.IsBorrowed(c.Request.Context(), bookID),
	})
}
