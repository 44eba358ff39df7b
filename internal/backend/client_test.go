package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	c, err := New(log, Config{BaseURL: baseURL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewRequiresBaseURL(t *testing.T) {
	log, err := logger.New("development")
	require.NoError(t, err)

	_, err = New(log, Config{})
	assert.Error(t, err)

	_, err = New(nil, Config{BaseURL: "http://localhost:1234"})
	assert.Error(t, err)
}

func TestRoutesDefaultsApplied(t *testing.T) {
	c := newTestClient(t, "http://localhost:1234")
	r := c.Routes()
	assert.Equal(t, "books", r.Books)
	assert.Equal(t, "authors", r.Authors)
	assert.Equal(t, "bookcategories", r.Categories)
	assert.Equal(t, "BookCategory", r.CategoriesEdit)
	assert.Equal(t, "BookBorrowing", r.Borrowings)
}

func TestGetDecodesCaseInsensitively(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/books/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ID": 7, "TITLE": "Dune"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Get(context.Background(), "books/7")
	require.True(t, out.Ok())

	var book struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, out.Decode(&book))
	assert.Equal(t, 7, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 1, hits, "exactly one round trip per call")
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Post(context.Background(), "books", map[string]any{"title": "Dune"})
	assert.True(t, out.Ok())
	assert.Equal(t, http.StatusCreated, out.Status)
}

func TestPatchWithNilBodyOmitsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Patch(context.Background(), "BookBorrowing/3/return", nil)
	assert.True(t, out.Ok())
}

func TestNonSuccessStatusIsNotOk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Get(context.Background(), "books")
	assert.False(t, out.Ok())
	assert.Equal(t, http.StatusInternalServerError, out.Status)
	require.Error(t, out.Failure())
	assert.Contains(t, out.Failure().Error(), "500")

	var v any
	assert.Error(t, out.Decode(&v))
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Get(context.Background(), "books/99")
	assert.True(t, out.NotFound())
	assert.False(t, out.Ok())
}

func TestTransportFailureSurfacesAsErr(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := newTestClient(t, srv.URL)
	out := c.Get(context.Background(), "books")
	assert.False(t, out.Ok())
	assert.Error(t, out.Err)
	assert.Error(t, out.Failure())
}

func TestDecodeFailureOnMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := c.Get(context.Background(), "books")
	assert.True(t, out.Ok(), "2xx means transport-level ok")

	var books []struct{}
	assert.Error(t, out.Decode(&books))
}
