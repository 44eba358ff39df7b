package services

import (
	"context"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

// LookupService fetches the reference lists that populate form dropdowns.
// It has no failure channel: a broken lookup fetch must never block
// rendering of the primary form, so every failure class collapses to an
// empty, non-nil slice.
type LookupService interface {
	Authors(ctx context.Context) []domain.Author
	Categories(ctx context.Context) []domain.BookCategory
	Books(ctx context.Context) []domain.Book
}

type lookupService struct {
	log    *logger.Logger
	client backend.Client
}

func NewLookupService(log *logger.Logger, client backend.Client) LookupService {
	return &lookupService{
		log:    log.With("service", "LookupService"),
		client: client,
	}
}

func (s *lookupService) Authors(ctx context.Context) []domain.Author {
	return loadOptions[domain.Author](s, ctx, s.client.Routes().Authors)
}

func (s *lookupService) Categories(ctx context.Context) []domain.BookCategory {
	return loadOptions[domain.BookCategory](s, ctx, s.client.Routes().Categories)
}

func (s *lookupService) Books(ctx context.Context) []domain.Book {
	return loadOptions[domain.Book](s, ctx, s.client.Routes().Books)
}

func loadOptions[T any](s *lookupService, ctx context.Context, resource string) []T {
	out := s.client.Get(ctx, resource)
	var items []T
	if err := out.Decode(&items); err != nil {
		s.log.Warn("lookup load failed, rendering empty list", "resource", resource, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}
