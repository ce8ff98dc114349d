package domain

import (
	"context"
	"errors"
)

// UploadResult is what the external storage collaborator hands back; only the
// URL and object path are persisted, never file bytes.
type UploadResult struct {
	URL  string
	Path string
}

// Provider stores payment-proof documents. Implementations are external
// collaborators (object stores, CDNs); the local-disk implementation exists
// for self-hosted deployments.
type Provider interface {
	Upload(ctx context.Context, fileName string, content []byte) (*UploadResult, error)
}

var ErrEmptyContent = errors.New("empty_content")
