package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client issues one HTTP round trip per call against the configured
// resource API. It has no failure channel other than the returned Outcome:
// transport errors, non-2xx statuses and decode problems all surface there.
type Client interface {
	Get(ctx context.Context, path string) Outcome
	Post(ctx context.Context, path string, body any) Outcome
	Put(ctx context.Context, path string, body any) Outcome
	Patch(ctx context.Context, path string, body any) Outcome
	Delete(ctx context.Context, path string) Outcome
	Routes() Routes
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Routes  Routes
}

type client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("missing backend base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.Routes = cfg.Routes.withDefaults()
	return &client{
		log:  log.With("client", "ResourceClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Outcome is the result of a single round trip. Err is set only for
// transport-level failures (no usable response); otherwise Status and Body
// reflect whatever the backend answered.
type Outcome struct {
	Status int
	Body   []byte
	Err    error
}

func (o Outcome) Ok() bool {
	return o.Err == nil && o.Status >= 200 && o.Status < 300
}

func (o Outcome) NotFound() bool {
	return o.Err == nil && o.Status == http.StatusNotFound
}

// Failure summarizes why the outcome is not Ok; nil when it is.
func (o Outcome) Failure() error {
	if o.Ok() {
		return nil
	}
	if o.Err != nil {
		return o.Err
	}
	return fmt.Errorf("backend http %d: %s", o.Status, strings.TrimSpace(string(o.Body)))
}

// Decode unmarshals the body into v. Field matching is case-insensitive,
// like the backend's own serializer. Decode failures are reported as
// errors, never panics.
func (o Outcome) Decode(v any) error {
	if err := o.Failure(); err != nil {
		return err
	}
	if err := json.Unmarshal(o.Body, v); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

func (c *client) Routes() Routes { return c.cfg.Routes }

func (c *client) Get(ctx context.Context, path string) Outcome {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *client) Post(ctx context.Context, path string, body any) Outcome {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *client) Put(ctx context.Context, path string, body any) Outcome {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *client) Patch(ctx context.Context, path string, body any) Outcome {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *client) Delete(ctx context.Context, path string) Outcome {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *client) do(ctx context.Context, method, path string, body any) Outcome {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Outcome{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return Outcome{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed", "method", method, "path", path, "error", err)
		return Outcome{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Status: resp.StatusCode, Err: fmt.Errorf("read backend response: %w", err)}
	}

	c.log.Debug("backend call", "method", method, "path", path, "status", resp.StatusCode)
	return Outcome{Status: resp.StatusCode, Body: raw}
}
