package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// restPrefix is prepended to every resource path.
const restPrefix = "/REST/"

// Transport issues REST requests on behalf of the typed operation clients.
// It owns the HTTP semantics: URL construction, authentication headers,
// retry with exponential backoff, and mapping responses to the error
// taxonomy. A Transport is immutable and safe for concurrent use.
type Transport struct {
	baseURL       string
	client        *http.Client
	log           hclog.Logger
	maxRetries    uint64
	retryInterval time.Duration
}

// NewTransport builds a Transport from the given configuration. Unset
// config fields are filled from DefaultConfig before validation.
func NewTransport(cfg *Config, opts ...Option) (*Transport, error) {
	defaults := DefaultConfig()
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaults.MaxRetries
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = defaults.RetryInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	if o.httpClient == nil {
		o.httpClient = cfg.NewHTTPClient()
	}

	return &Transport{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/") + restPrefix,
		client:        o.httpClient,
		log:           o.logger,
		maxRetries:    uint64(cfg.MaxRetries),
		retryInterval: cfg.RetryInterval,
	}, nil
}

// Get issues a GET for path. It returns false when the server replied
// without a value (204 or an empty body); result is left untouched in
// that case.
func (t *Transport) Get(ctx context.Context, path string, result interface{}) (bool, error) {
	return t.do(ctx, http.MethodGet, path, nil, result)
}

// Post issues a POST with body and decodes the response into result.
func (t *Transport) Post(ctx context.Context, path string, body, result interface{}) error {
	_, err := t.do(ctx, http.MethodPost, path, body, result)
	return err
}

// Put issues a PUT with body and decodes the response into result.
func (t *Transport) Put(ctx context.Context, path string, body, result interface{}) error {
	_, err := t.do(ctx, http.MethodPut, path, body, result)
	return err
}

// Delete issues a DELETE and decodes the response into result, which may
// be nil when no response body is expected.
func (t *Transport) Delete(ctx context.Context, path string, result interface{}) error {
	_, err := t.do(ctx, http.MethodDelete, path, nil, result)
	return err
}

// do runs one logical request: at most one server-visible operation from
// the caller's perspective, retried only on connection failures and 5xx
// responses. 4xx responses are permanent.
func (t *Transport) do(ctx context.Context, method, path string, body, result interface{}) (bool, error) {
	endpoint := t.baseURL + path
	requestID := uuid.NewString()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	t.log.Debug("issuing request",
		"method", method, "path", path, "request_id", requestID)

	var statusCode int
	var respBody []byte

	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := t.client.Do(req)
		if err != nil {
			// Connection-level failure, retryable unless the context is done.
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			t.log.Debug("request attempt failed",
				"request_id", requestID, "error", err)
			return err
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		statusCode = resp.StatusCode

		if statusCode >= http.StatusInternalServerError {
			t.log.Debug("server error, will retry",
				"request_id", requestID, "status", statusCode)
			return requestFailed(statusCode, respBody)
		}
		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			return backoff.Permanent(requestFailed(statusCode, respBody))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = t.retryInterval

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, t.maxRetries), ctx))
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, &CancelledError{Err: err}
		}
		return false, err
	}

	t.log.Debug("request complete",
		"request_id", requestID, "status", statusCode)

	if statusCode == http.StatusNoContent || len(respBody) == 0 {
		return false, nil
	}
	if result == nil {
		return true, nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return false, &DecodingError{Err: err}
	}
	return true, nil
}

// requestFailed builds a RequestFailedError from a non-2xx response,
// preferring the server's JSON error envelope over the raw body.
func requestFailed(statusCode int, body []byte) *RequestFailedError {
	e := &RequestFailedError{StatusCode: statusCode}

	var envelope struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		e.Message = envelope.Message
		e.Code = envelope.Code
		return e
	}

	e.Message = strings.TrimSpace(string(body))
	return e
}
