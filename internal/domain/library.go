package domain

import "time"

// Borrowing record status values the backend uses by convention. The
// portal sets and compares them but does not enforce them as an enum.
const (
	StatusBorrowed = "Borrowed"
	StatusReturned = "Returned"
)

type Book struct {
	ID             int     `json:"id" form:"id"`
	Title          *string `json:"title" form:"title"`
	Year           *int    `json:"year" form:"year"`
	AuthorID       *int    `json:"authorId" form:"authorId"`
	BookCategoryID *int    `json:"bookCategoryId" form:"bookCategoryId"`

	// Resolved associations, populated only when composing a detail view.
	// Display only, never part of an outbound payload.
	Author       *Author       `json:"-" form:"-"`
	BookCategory *BookCategory `json:"-" form:"-"`
}

type Author struct {
	AuthorID int     `json:"authorId" form:"authorId"`
	Name     *string `json:"name" form:"name"`

	Books []Book `json:"books,omitempty" form:"-"`
}

type BookCategory struct {
	BookCategoryID int     `json:"bookCategoryId" form:"bookCategoryId"`
	Name           *string `json:"name" form:"name"`

	Books []Book `json:"books,omitempty" form:"-"`
}

// BookBorrowing is keyed by the borrowed book's identifier; the backend
// allows at most one active record per book.
type BookBorrowing struct {
	BookID         int        `json:"bookId"`
	BorrowerName   string     `json:"borrowerName,omitempty"`
	BorrowerNumber string     `json:"borrowerNumber,omitempty"`
	BorrowDate     time.Time  `json:"borrowDate"`
	ReturnDate     *time.Time `json:"returnDate"`
	Status         string     `json:"status"`

	Book *Book `json:"-"`
}

// Outstanding reports whether the record still has no return date.
func (b BookBorrowing) Outstanding() bool {
	return b.ReturnDate == nil
}

// Zero-value accessors for templates, which cannot compare pointer fields
// against literals.

func (b Book) TitleValue() string {
	if b.Title == nil {
		return ""
	}
	return *b.Title
}

func (b Book) YearValue() int {
	if b.Year == nil {
		return 0
	}
	return *b.Year
}

func (b Book) AuthorIDValue() int {
	if b.AuthorID == nil {
		return 0
	}
	return *b.AuthorID
}

func (b Book) BookCategoryIDValue() int {
	if b.BookCategoryID == nil {
		return 0
	}
	return *b.BookCategoryID
}

func (a Author) NameValue() string {
	if a.Name == nil {
		return ""
	}
	return *a.Name
}

func (c BookCategory) NameValue() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}
