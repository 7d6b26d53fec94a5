package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-assistant/internal/shared/storage/object"
)

// Store implements ObjectStore using a flat directory on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a local store rooted at baseDir, creating the directory if missing.
func New(baseDir string) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("local store: base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("local store: mkdir %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.baseDir
}

// Save writes the reader to disk under the sanitized file name.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	key := object.KeyForFileName(fileName)
	head, mimeType, err := object.Sniff(r)
	if err != nil {
		return "", 0, "", fmt.Errorf("read sniff: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, key)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	size := int64(0)
	if len(head) > 0 {
		n, err := f.Write(head)
		if err != nil {
			return "", 0, "", fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return "", 0, "", fmt.Errorf("write body: %w", err)
	}
	size += written

	return key, size, mimeType, nil
}

// Open opens a stored upload for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.Path(storageKey)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Path resolves a storage key to its file path.
func (s *Store) Path(storageKey string) (string, error) {
	clean := filepath.Clean(storageKey)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", object.ErrInvalidKey
	}
	return filepath.Join(s.baseDir, clean), nil
}

var _ object.ObjectStore = (*Store)(nil)
