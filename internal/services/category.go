package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/domain"
	"github.com/yungbote/booklibrary-portal/internal/platform/apierr"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.BookCategory, error)
	Get(ctx context.Context, id int) (*domain.BookCategory, error)
	Create(ctx context.Context, category domain.BookCategory) error
	Update(ctx context.Context, id int, category domain.BookCategory) error
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	log    *logger.Logger
	client backend.Client
}

func NewCategoryService(log *logger.Logger, client backend.Client) CategoryService {
	return &categoryService{
		log:    log.With("service", "CategoryService"),
		client: client,
	}
}

// Reads go through the lowercase collection route, writes through the
// mixed-case one. Both come from Routes config; see backend.Routes.
func (s *categoryService) List(ctx context.Context) ([]domain.BookCategory, error) {
	out := s.client.Get(ctx, s.client.Routes().Categories)
	var categories []domain.BookCategory
	if err := decodeOutcome(out, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id int) (*domain.BookCategory, error) {
	out := s.client.Get(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Categories, id))
	var category domain.BookCategory
	if err := decodeOutcome(out, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Create(ctx context.Context, category domain.BookCategory) error {
	out := s.client.Post(ctx, s.client.Routes().CategoriesEdit, category)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *categoryService) Update(ctx context.Context, id int, category domain.BookCategory) error {
	if id != category.BookCategoryID {
		return apierr.New(http.StatusBadRequest, CodeIdentifierMismatch,
			fmt.Errorf("route id %d does not match payload id %d", id, category.BookCategoryID))
	}
	out := s.client.Put(ctx, fmt.Sprintf("%s/%d", s.client.Routes().CategoriesEdit, id), category)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id int) error {
	out := s.client.Delete(ctx, fmt.Sprintf("%s/%d", s.client.Routes().CategoriesEdit, id))
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}
