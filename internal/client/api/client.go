// Package api implements the HTTP client for the remote persistence
// service. The engine treats the remote as an idempotent-on-ack
// boundary; no multi-operation transactions are assumed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aceup/plansync/internal/models"
	pkgapi "github.com/aceup/plansync/pkg/api"
)

//go:generate moq -out remotestore_mock.go . RemoteStore

// RemoteStore is the engine's view of the remote persistence service.
type RemoteStore interface {
	// ApplyOperation replays one queued mutation against the remote
	// store. A nil error means the operation was acknowledged.
	// Returns *RejectionError for irrecoverable refusals and
	// *TransientError for failures worth retrying.
	ApplyOperation(ctx context.Context, op pkgapi.Operation) error

	// FetchAuthoritative pulls the authoritative records of one data
	// category, optionally limited to changes since the given time.
	FetchAuthoritative(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error)
}

// Client is the HTTP implementation of RemoteStore.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client. timeout bounds each request end
// to end; it is treated like any other transient failure.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// ApplyOperation replays one operation via POST /api/v1/operations.
func (c *Client) ApplyOperation(ctx context.Context, op pkgapi.Operation) error {
	var resp pkgapi.ApplyResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/operations", op, &resp); err != nil {
		return c.classify(op.ID, err)
	}

	if resp.Status == pkgapi.ApplyStatusRejected {
		return &RejectionError{OperationID: op.ID, Reason: resp.Reason}
	}
	return nil
}

// FetchAuthoritative pulls one category via GET /api/v1/records/{type}.
func (c *Client) FetchAuthoritative(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error) {
	path := "/api/v1/records/" + url.PathEscape(string(dataType))
	if since != nil {
		path += "?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339Nano))
	}

	var resp pkgapi.RecordsResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, c.classify("", err)
	}
	return resp.Records, nil
}

// statusError carries the HTTP status through doRequest so callers can
// classify it.
type statusError struct {
	message string
	code    int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.code, e.message)
}

// classify maps raw request failures onto the engine's error taxonomy.
// 4xx responses mean the remote refused the payload itself; everything
// else (network errors, timeouts, 5xx) is transient.
func (c *Client) classify(operationID string, err error) error {
	var se *statusError
	if errors.As(err, &se) && se.code >= 400 && se.code < 500 {
		return &RejectionError{OperationID: operationID, Reason: se.message}
	}
	return &TransientError{Err: err}
}

// doRequest performs one HTTP round trip with JSON bodies.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp pkgapi.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &statusError{code: resp.StatusCode, message: errResp.Message}
		}
		return &statusError{code: resp.StatusCode, message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
