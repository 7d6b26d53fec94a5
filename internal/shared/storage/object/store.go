package object

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned when a storage key would escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// ObjectStore defines the contract for saving and retrieving uploaded files.
type ObjectStore interface {
	// Save writes r under a name derived from fileName. Saving the same name twice overwrites.
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
