package service

import (
	"context"
	"strings"
	"testing"

	"github.com/sreejith97/hireai/config"
)

func TestNewMinioService(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "test",
		UseSSL:    false,
	}

	svc, err := NewMinioService(cfg)
	// NewMinioService typically succeeds as it just creates the client
	// The actual connection is tested on first operation
	if err != nil {
		t.Logf("NewMinioService returned error: %v", err)
	} else if svc == nil {
		t.Error("Expected non-nil service")
	}
}

func TestMinioServiceObjectName(t *testing.T) {
	svc := &MinioService{
		bucket: "docs",
		config: &config.MinioConfig{Endpoint: "localhost:9000"},
	}

	tests := []struct {
		category string
		sourceID string
		filename string
		expected string
	}{
		{"law", "abc-123", "labor_law.pdf", "law/abc-123/labor_law.pdf"},
		{"policy", "xyz-789", "handbook.pdf", "policy/xyz-789/handbook.pdf"},
	}

	for _, tt := range tests {
		result := svc.ObjectName(tt.category, tt.sourceID, tt.filename)
		if result != tt.expected {
			t.Errorf("Expected '%s', got '%s'", tt.expected, result)
		}
	}
}

func TestMinioServiceWithCancelledContext(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:   "localhost:9000",
		AccessKey:  "test",
		SecretKey:  "test",
		Bucket:     "test",
		UseSSL:     false,
		ExpireDays: 7,
	}

	svc, err := NewMinioService(cfg)
	if err != nil {
		t.Skip("Could not create MinIO service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The operation should fail fast with a cancelled context
	err = svc.UploadDocument(ctx, "test", strings.NewReader("test"), 4, "text/plain")
	if err == nil {
		t.Log("Upload with cancelled context - error handling depends on client implementation")
	}
}

func TestMinioServiceEnsureBucket(t *testing.T) {
	// Note: This requires actual MinIO connection or proper mocking
	t.Skip("MinIO operations require actual MinIO client mock")
}

func TestMinioServiceDeleteDocument(t *testing.T) {
	// Note: This requires actual MinIO connection or proper mocking
	t.Skip("MinIO operations require actual MinIO client mock")
}
