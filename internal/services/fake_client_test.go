package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	return log
}

type fakeCall struct {
	Method string
	Path   string
	Body   any
}

// fakeClient records every call and answers from a stub table. The
// aggregator issues dependent fetches concurrently, so access is locked.
type fakeClient struct {
	mu        sync.Mutex
	routes    backend.Routes
	calls     []fakeCall
	responses map[string]backend.Outcome
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		routes:    backend.DefaultRoutes(),
		responses: map[string]backend.Outcome{},
	}
}

func (f *fakeClient) stub(method, path string, out backend.Outcome) {
	f.responses[method+" "+path] = out
}

func (f *fakeClient) stubJSON(method, path string, v any) {
	raw, _ := json.Marshal(v)
	f.stub(method, path, backend.Outcome{Status: http.StatusOK, Body: raw})
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) callsTo(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeClient) lastBody() any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1].Body
}

func (f *fakeClient) do(method, path string, body any) backend.Outcome {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Method: method, Path: path, Body: body})
	out, ok := f.responses[method+" "+path]
	f.mu.Unlock()
	if !ok {
		return backend.Outcome{Status: http.StatusNotFound, Body: []byte("no stub")}
	}
	return out
}

func (f *fakeClient) Get(_ context.Context, path string) backend.Outcome {
	return f.do(http.MethodGet, path, nil)
}
func (f *fakeClient) Post(_ context.Context, path string, body any) backend.Outcome {
	return f.do(http.MethodPost, path, body)
}
func (f *fakeClient) Put(_ context.Context, path string, body any) backend.Outcome {
	return f.do(http.MethodPut, path, body)
}
func (f *fakeClient) Patch(_ context.Context, path string, body any) backend.Outcome {
	return f.do(http.MethodPatch, path, body)
}
func (f *fakeClient) Delete(_ context.Context, path string) backend.Outcome {
	return f.do(http.MethodDelete, path, nil)
}
func (f *fakeClient) Routes() backend.Routes { return f.routes }
