// Package backend talks to the ExiBy REST backend. Every DAL call goes through Client.InvokeAPI.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/environment"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// AuthHeader carries the backend auth token
	AuthHeader = "x-sh-auth"
	// AuthTokenKey is the context key under which the request's backend auth token is stored
	AuthTokenKey = "backend_auth_token"
)

// Request describes one backend call
type Request struct {
	Path     string
	Method   string
	Headers  map[string]string
	Query    url.Values
	PostData interface{}
}

// Response is the backend response envelope
type Response struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
	Count   int                 `json:"count"`
}

// Decode unmarshals the envelope's data into v
func (r *Response) Decode(v interface{}) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	return errors.Wrap(json.Unmarshal(r.Data, v), "could not decode response data")
}

// Error is returned for backend responses with an HTTP status of 400 or above
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// Client invokes backend endpoints
type Client interface {
	InvokeAPI(ctx context.Context, req Request) (*Response, error)
}

type httpClient struct {
	logger       *zap.Logger
	baseURL      string
	defaultToken string
	http         *http.Client
}

// NewClient creates a Client for the backend at BACKEND_URL
func NewClient(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env) Client {
	return &httpClient{
		logger:       logger,
		baseURL:      strings.TrimRight(env.Get(environment.BackendURL), "/"),
		defaultToken: env.Get(environment.BackendAuthToken),
		http:         &http.Client{Timeout: time.Duration(cfg.Backend.Timeout) * time.Second},
	}
}

func (c *httpClient) InvokeAPI(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.PostData != nil {
		encoded, err := json.Marshal(req.PostData)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req), body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create backend request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.authToken(ctx); token != "" {
		httpReq.Header.Set(AuthHeader, token)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("backend request failed", zap.String("method", method), zap.String("path", req.Path), zap.Error(err))
		return nil, errors.Wrap(err, "could not reach backend")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read backend response")
	}

	var envelope Response
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil && resp.StatusCode < http.StatusBadRequest {
			return nil, errors.Wrap(err, "could not decode backend response")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		c.logger.Debug("backend returned error",
			zap.String("method", method),
			zap.String("path", req.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return nil, &Error{StatusCode: resp.StatusCode, Message: message}
	}

	return &envelope, nil
}

func (c *httpClient) url(req Request) string {
	u := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) == 0 {
		return u
	}
	return u + "?" + req.Query.Encode()
}

func (c *httpClient) authToken(ctx context.Context) string {
	if token, ok := ctx.Value(AuthTokenKey).(string); ok && token != "" {
		return token
	}
	return c.defaultToken
}
