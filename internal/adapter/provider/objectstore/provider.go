// Package objectstore uploads visitor photos to an S3-style bucket exposed
// over plain HTTP and returns their public URL.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
)

// ErrUnsupportedType is returned for uploads that are not an image.
var ErrUnsupportedType = errors.New("objectstore: unsupported content type")

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Provider uploads objects into one bucket.
type Provider struct {
	baseURL       string
	publicBaseURL string
	bucket        string
	apiKey        string
	httpClient    *http.Client
	log           *slog.Logger
}

// NewProvider creates a provider from config.
func NewProvider(cfg config.StorageConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		bucket:        cfg.Bucket,
		apiKey:        cfg.APIKey,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           logger.With("adapter", "objectstore"),
	}
}

// Enabled reports whether an upload endpoint is configured.
func (p *Provider) Enabled() bool {
	return p.baseURL != ""
}

// UploadPhoto stores an image under the unit prefix and returns the public URL.
// The content type is sniffed from the data, not trusted from the client.
func (p *Provider) UploadPhoto(ctx context.Context, unitID uuid.UUID, data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	name := unitID.String() + "/" + uuid.NewString() + "." + ext
	reqURL := p.baseURL + "/object/" + p.bucket + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("objectstore: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("objectstore: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return "", fmt.Errorf("objectstore: unexpected status %d: %s", resp.StatusCode, body)
	}

	p.log.DebugContext(ctx, "photo uploaded",
		slog.String("object", name),
		slog.Int("bytes", len(data)),
	)

	return p.publicBaseURL + "/" + p.bucket + "/" + name, nil
}
