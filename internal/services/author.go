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

type AuthorService interface {
	List(ctx context.Context) ([]domain.Author, error)
	Get(ctx context.Context, id int) (*domain.Author, error)
	Create(ctx context.Context, author domain.Author) error
	Update(ctx context.Context, id int, author domain.Author) error
	Delete(ctx context.Context, id int) error
}

type authorService struct {
	log    *logger.Logger
	client backend.Client
}

func NewAuthorService(log *logger.Logger, client backend.Client) AuthorService {
	return &authorService{
		log:    log.With("service", "AuthorService"),
		client: client,
	}
}

func (s *authorService) List(ctx context.Context) ([]domain.Author, error) {
	out := s.client.Get(ctx, s.client.Routes().Authors)
	var authors []domain.Author
	if err := decodeOutcome(out, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *authorService) Get(ctx context.Context, id int) (*domain.Author, error) {
	out := s.client.Get(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Authors, id))
	var author domain.Author
	if err := decodeOutcome(out, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *authorService) Create(ctx context.Context, author domain.Author) error {
	out := s.client.Post(ctx, s.client.Routes().Authors, author)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *authorService) Update(ctx context.Context, id int, author domain.Author) error {
	if id != author.AuthorID {
		return apierr.New(http.StatusBadRequest, CodeIdentifierMismatch,
			fmt.Errorf("route id %d does not match payload id %d", id, author.AuthorID))
	}
	out := s.client.Put(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Authors, id), author)
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int) error {
	out := s.client.Delete(ctx, fmt.Sprintf("%s/%d", s.client.Routes().Authors, id))
	if !out.Ok() {
		return backendFailure(out)
	}
	return nil
}
