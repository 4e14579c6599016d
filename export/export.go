// Package export pushes finished lessons to the Composio Google Docs API.
// Export is best-effort: every failure wraps ErrExport and the caller keeps
// the already-generated lesson text.
package export

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
)

const (
	defaultBaseURL = "https://backend.composio.dev/api/v2/actions/GOOGLEDOCS_CREATE_DOCUMENT/execute"
	defaultTimeout = 30 * time.Second
)

// ErrExport marks any document export failure. Lessons survive it.
var ErrExport = errors.New("document export failed")

// Client calls the Composio tool-execution endpoint that creates a Google Doc.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates an export client. An empty key leaves the client disabled;
// Export then fails immediately with ErrExport.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewWithBaseURL overrides the endpoint, used by tests.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Enabled reports whether a Composio key was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Export creates a remote document holding the lesson and returns its ID.
func (c *Client) Export(ctx context.Context, title, body string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("no Composio API key configured: %w", ErrExport)
	}

	payload, err := json.Marshal(map[string]any{
		"input": map[string]string{
			"title":        title,
			"markdownText": body,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding export request: %w", ErrExport)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building export request: %w", ErrExport)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling document service: %v: %w", err, ErrExport)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("document service returned %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(detail)), ErrExport)
	}

	var decoded struct {
		Successful bool `json:"successful"`
		Data       struct {
			DocumentID string `json:"documentId"`
		} `json:"data"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding document service response: %v: %w", err, ErrExport)
	}
	if !decoded.Successful || decoded.Data.DocumentID == "" {
		return "", fmt.Errorf("document service rejected the export: %s: %w", decoded.Error, ErrExport)
	}

	return decoded.Data.DocumentID, nil
}
