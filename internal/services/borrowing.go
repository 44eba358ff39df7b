package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/platform/apierr"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

const maxBorrowerFieldLen = 100

// BorrowingService owns the borrowing-record lifecycle: create, edit,
// return, delete, plus the read-only status probe used by the UI.
type BorrowingService interface {
	List(ctx context.Context) ([]domain.BookBorrowing, error)
	Get(ctx context.Context, id int) (*domain.BookBorrowing, error)

	// Create validates locally, substitutes the current time for a zero
	// borrow date and forwards the record. It returns the record as
	// forwarded so the caller can report the resulting status.
	Create(ctx context.Context, rec domain.BookBorrowing) (domain.BookBorrowing, error)

	// Edit rejects a route/payload identifier mismatch before any call.
	Edit(ctx context.Context, id int, rec domain.BookBorrowing) error

	// Return issues the return transition without checking current status
	// first; invoking it again on an already-returned record is the
	// backend's business. Idempotent from the caller's perspective.
	Return(ctx context.Context, id int) error

	Delete(ctx context.Context, id int) error

	// IsBorrowed fails open: any uncertainty (unreachable backend,
	// non-2xx, undecodable payload) reads as "not borrowed" so a borrow
	// attempt is never blocked on a failed check. Deliberate policy, not
	// an incidental default.
	IsBorrowed(ctx context.Context, bookID int) bool
}

type borrowingService struct {
	log    *logger.Logger
	client backend.Client
	now    func() time.Time
}

func NewBorrowingService(log *logger.Logger, client backend.Client) BorrowingService {
	return &borrowingService{
		log:    log.With("service", "BorrowingService"),
		client: client,
		now:    time.Now,
	}
}

func (s *borrowingService) List(ctx context.Context) ([]domain.BookBorrowing, error) {
	out := s.client.Get(ctx, s.client.Routes().Borrowings)
	var recs []domain.BookBorrowing
	if err := decodeOutcome(out, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *borrowingService) Get(ctx context.Context, id int) (*domain.BookBorrowing, error) {
	out := s.client.Get(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Borrowings, id))
	var rec domain.BookBorrowing
	if err := decodeOutcome(out, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *borrowingService) Create(ctx context.Context, rec domain.BookBorrowing) (domain.BookBorrowing, error) {
	if err := validateBorrowing(rec); err != nil {
		return rec, err
	}
	if rec.BorrowDate.IsZero() {
		rec.BorrowDate = s.now()
	}
	out := s.client.Post(ctx, s.client.Routes().Borrowings, rec)
	if !out.Ok() {
		return rec, backendFailure(out)
	}
	s.log.Info("borrowing record created", "book_id", rec.BookID, "status", rec.Status)
	return rec, nil
}

func (s *borrowingService) Edit(ctx context.Context, id int, rec domain.BookBorrowing) error {
	if id != rec.BookID {
		return apierr.New(http.StatusBadRequest, CodeIdentifierMismatch,
			fmt.Errorf("route id %d does not match payload book id %d", id, rec.BookID))
	}
	if err := validateBorrowing(rec); err != nil {
		return err
	}
	out := s.client.Put(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Borrowings, id), rec)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *borrowingService) Return(ctx context.Context, id int) error {
	out := s.client.Patch(ctx, fmt.Sprintf("%s/%d/return", s.client.Routes().Borrowings, id), nil)
	if !out.Ok() {
		return backendFailure(out)
	}
	s.log.Info("book returned", "book_id", id)
	return nil
}

func (s *borrowingService) Delete(ctx context.Context, id int) error {
	out := s.client.Delete(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Borrowings, id))
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *borrowingService) IsBorrowed(ctx context.Context, bookID int) bool {
	out := s.client.Get(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Borrowings, bookID))
	var rec domain.BookBorrowing
	if err := out.Decode(&rec); err != nil {
		s.log.Debug("borrow status unknown, treating as available", "book_id", bookID, "error", err)
		return false
	}
	return rec.Status == domain.StatusBorrowed
}

func validateBorrowing(rec domain.BookBorrowing) error {
	var problems []string
	if rec.BookID <= 0 {
		problems = append(problems, "a book must be selected")
	}
	if strings.TrimSpace(rec.Status) == "" {
		problems = append(problems, "status is required")
	}
	if len(rec.BorrowerName) > maxBorrowerFieldLen {
		problems = append(problems, fmt.Sprintf("borrower name must be at most %d characters", maxBorrowerFieldLen))
	}
	if len(rec.BorrowerNumber) > maxBorrowerFieldLen {
		problems = append(problems, fmt.Sprintf("borrower number must be at most %d characters", maxBorrowerFieldLen))
	}
	if len(problems) > 0 {
		return apierr.New(http.StatusBadRequest, CodeValidationFailed, errors.New(strings.Join(problems, "; ")))
	}
	return nil
}
