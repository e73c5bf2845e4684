package imagestore

import (
	"context"
	"errors"
)

// Asset is a reference to an externally hosted image.
type Asset struct {
	URL      string
	PublicID string
}

// Store uploads and deletes images on an external hosting service.
type Store interface {
	Upload(ctx context.Context, filePath, folder string) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// ErrNotConfigured is returned by the disabled store when upload credentials
// are missing.
var ErrNotConfigured = errors.New("image store is not configured")

type disabledStore struct{}

// NewDisabled returns a Store that rejects every operation. Used when
// Cloudinary credentials are absent so the rest of the API keeps working.
func NewDisabled() Store {
	return disabledStore{}
}

func (disabledStore) Upload(context.Context, string, string) (*Asset, error) {
	return nil, ErrNotConfigured
}

func (disabledStore) Delete(context.Context, string) error {
	return ErrNotConfigured
}
