package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// SimulatedUploader is a stand-in used when no bucket is configured. It
// waits roughly as long as a real upload would and fabricates a URL from
// the filename and current time.
type SimulatedUploader struct {
	BaseURL string
	Delay   time.Duration
}

func NewSimulatedUploader() *SimulatedUploader {
	return &SimulatedUploader{
		BaseURL: "https://storage.example.com",
		Delay:   1500 * time.Millisecond,
	}
}

func (u *SimulatedUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	select {
	case <-time.After(u.Delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return fmt.Sprintf("%s/uploads/%d-%s", u.BaseURL, time.Now().UnixMilli(), SanitizeFilename(filename)), nil
}

// SanitizeFilename strips any path component and whitespace so the name is
// safe to embed in an object key or URL.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." || base == "/" {
		return "file"
	}
	return base
}
