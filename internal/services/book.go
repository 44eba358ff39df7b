package services

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/platform/apierr"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int) (*domain.Book, error)
	GetDetail(ctx context.Context, id int) (*domain.Book, error)
	Create(ctx context.Context, book domain.Book) error
	Update(ctx context.Context, id int, book domain.Book) error
	Delete(ctx context.Context, id int) error
}

type bookService struct {
	log    *logger.Logger
	client backend.Client
}

func NewBookService(log *logger.Logger, client backend.Client) BookService {
	return &bookService{
		log:    log.With("service", "BookService"),
		client: client,
	}
}

func (s *bookService) List(ctx context.Context) ([]domain.Book, error) {
	out := s.client.Get(ctx, s.client.Routes().Books)
	var books []domain.Book
	if err := decodeOutcome(out, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *bookService) Get(ctx context.Context, id int) (*domain.Book, error) {
	out := s.client.Get(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Books, id))
	var book domain.Book
	if err := decodeOutcome(out, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetDetail composes the detail view: the book itself plus its resolved
// author and category. The primary fetch is fatal on failure; the two
// dependent fetches are not. A detail page with an unresolved association
// beats no detail page, so an enrichment failure only leaves the derived
// field unset. The dependent fetches are independent of each other and run
// concurrently; each writes a disjoint field of the composite.
func (s *bookService) GetDetail(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	if aid := book.AuthorID; aid != nil && *aid > 0 && book.Author == nil {
		authorID := *aid
		g.Go(func() error {
			out := s.client.Get(gctx, fmt.Sprintf("%s/%d", s.client.Routes().Authors, authorID))
			var author domain.Author
			if err := out.Decode(&author); err != nil {
				s.log.Debug("author enrichment skipped", "book_id", id, "author_id", authorID, "error", err)
				return nil
			}
			if author.AuthorID != authorID {
				s.log.Warn("author payload does not match book foreign key, discarding", "book_id", id, "author_id", authorID)
				return nil
			}
			book.Author = &author
			return nil
		})
	}

	if cid := book.BookCategoryID; cid != nil && *cid > 0 && book.BookCategory == nil {
		categoryID := *cid
		g.Go(func() error {
			out := s.client.Get(gctx, fmt.Sprintf("%s/%d", s.client.Routes().Categories, categoryID))
			var category domain.BookCategory
			if err := out.Decode(&category); err != nil {
				s.log.Debug("category enrichment skipped", "book_id", id, "category_id", categoryID, "error", err)
				return nil
			}
			if category.BookCategoryID != categoryID {
				s.log.Warn("category payload does not match book foreign key, discarding", "book_id", id, "category_id", categoryID)
				return nil
			}
			book.BookCategory = &category
			return nil
		})
	}

	_ = g.Wait()
	return book, nil
}

func (s *bookService) Create(ctx context.Context, book domain.Book) error {
	out := s.client.Post(ctx, s.client.Routes().Books, book)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *bookService) Update(ctx context.Context, id int, book domain.Book) error {
	if id != book.ID {
		return apierr.New(http.StatusBadRequest, CodeIdentifierMismatch,
			fmt.Errorf("route id %d does not match payload id %d", id, book.ID))
	}
	out := s.client.Put(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Books, id), book)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int) error {
	out := s.client.Delete(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Books, id))
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}
