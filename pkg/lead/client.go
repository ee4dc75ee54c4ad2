// Package lead wraps the third-party lead-ingestion endpoint the contact
// form submits to. One call is one attempt: no retries are issued here.
package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client defines the interface for delivering a lead to the remote endpoint.
type Client interface {
	// Submit posts the flattened field set as a multipart form and returns
	// the endpoint's verdict. A non-nil error means the endpoint could not
	// be reached or answered garbage; a server-side rejection comes back as
	// a Result with Success=false.
	Submit(ctx context.Context, fields map[string]string) (*Result, error)
}

// Result is the endpoint's JSON response, reduced to what the form needs.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a lead client for the given endpoint URL.
func NewClient(endpoint string) Client {
	return &clientImpl{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *clientImpl) Submit(ctx context.Context, fields map[string]string) (*Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("lead: write field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lead: finalize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("lead: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lead: submit: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lead: read response: %w", err)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, fmt.Errorf("lead: parse response: %w", err)
		}
		// Non-2xx with an opaque body is a plain rejection.
		return &Result{Success: false}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Success = false
	}
	return &result, nil
}
