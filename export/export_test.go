package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExportCreatesDocument(t *testing.T) {
	var gotKey, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"successful": true, "data": {"documentId": "doc-123"}}`))
	}))
	defer server.Close()

	client := NewWithBaseURL("composio-key", server.URL)
	docID, err := client.Export(context.Background(), "Dutch lesson", "de kat - the cat")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if docID != "doc-123" {
		t.Errorf("expected document ID doc-123, got %q", docID)
	}
	if gotKey != "composio-key" {
		t.Errorf("expected the API key header, got %q", gotKey)
	}
	if !strings.Contains(gotBody, "de kat - the cat") {
		t.Errorf("lesson body missing from export payload: %s", gotBody)
	}
}

func TestExportFailureWrapsErrExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tool not connected", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewWithBaseURL("composio-key", server.URL).Export(context.Background(), "t", "b")
	if !errors.Is(err, ErrExport) {
		t.Errorf("remote failure must wrap ErrExport, got: %v", err)
	}
}

func TestExportRejectedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"successful": false, "error": "google docs not connected"}`))
	}))
	defer server.Close()

	_, err := NewWithBaseURL("composio-key", server.URL).Export(context.Background(), "t", "b")
	if !errors.Is(err, ErrExport) {
		t.Errorf("rejected export must wrap ErrExport, got: %v", err)
	}
}

func TestExportWithoutKey(t *testing.T) {
	client := New("")
	if client.Enabled() {
		t.Error("client without a key must report disabled")
	}
	if _, err := client.Export(context.Background(), "t", "b"); !errors.Is(err, ErrExport) {
		t.Errorf("disabled client must fail with ErrExport, got: %v", err)
	}
}
