package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sreejith97/hireai/config"
)

func TestExtractText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract/text" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Unexpected auth header: %s", auth)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Expected multipart request, got %s", r.Header.Get("Content-Type"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"msg":"ok","data":{"text":"Article 1. Extracted text.","pages":3}}`))
	}))
	defer server.Close()

	svc := NewExtractService(&config.ExtractConfig{
		APIURL:   server.URL,
		APIToken: "test-token",
	})

	text, err := svc.ExtractText(context.Background(), "labor_law.pdf", []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Article 1. Extracted text." {
		t.Errorf("Unexpected text: '%s'", text)
	}
}

func TestExtractTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":1,"msg":"unsupported format"}`))
	}))
	defer server.Close()

	svc := NewExtractService(&config.ExtractConfig{APIURL: server.URL})

	_, err := svc.ExtractText(context.Background(), "file.bin", []byte("payload"))
	if err == nil {
		t.Fatal("Expected error for API failure")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Expected API message in error, got: %v", err)
	}
}

func TestExtractTextBadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	svc := NewExtractService(&config.ExtractConfig{APIURL: server.URL})

	_, err := svc.ExtractText(context.Background(), "file.pdf", []byte("payload"))
	if err == nil {
		t.Fatal("Expected error for unparseable response")
	}
}

func TestExtractTextUnreachable(t *testing.T) {
	svc := NewExtractService(&config.ExtractConfig{APIURL: "http://127.0.0.1:1"})

	_, err := svc.ExtractText(context.Background(), "file.pdf", []byte("payload"))
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
}
