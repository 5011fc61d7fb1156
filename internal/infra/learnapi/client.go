// Package learnapi wraps the platform backend's REST endpoints behind the
// usecase ports. One Client implements all of them; each endpoint group lives
// in its own file.
package learnapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/pkg/errs"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.PlatformConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// apiError is the backend's 4xx body. Status is filled from the response.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// do runs one request against the backend and classifies failures: transport
// errors become *errs.NetworkError (timeout or unreachable), 5xx becomes
// *errs.NetworkError (server_error), 4xx becomes *apiError for the caller to
// map onto a domain sentinel.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, op)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.NetworkError{Kind: errs.NetworkUnreachable, Op: op, Err: err}
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.Error("backend returned server error",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return &errs.NetworkError{
			Kind: errs.NetworkServerError,
			Op:   op,
			Err:  fmt.Errorf("status %d", resp.StatusCode),
		}
	case resp.StatusCode >= http.StatusBadRequest:
		apiErr := &apiError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errs.Wrap(err, op+": decode response")
		}
	}
	return nil
}

func classifyTransport(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &errs.NetworkError{Kind: errs.NetworkTimeout, Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &errs.NetworkError{Kind: errs.NetworkTimeout, Op: op, Err: err}
	}
	return &errs.NetworkError{Kind: errs.NetworkUnreachable, Op: op, Err: err}
}

func asAPIError(err error) (*apiError, bool) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
