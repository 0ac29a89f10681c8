// Package storage persists ticket attachments on the local filesystem.
// Blobs live under <root>/ticket_<id>/ with randomized names; the
// original file name only exists in the files table.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"helpdesk/internal/shared/logger"
)

// Store is the attachment blob store consumed by the upload and delete
// use cases.
type Store interface {
	// Save writes the stream and returns the root-relative path and
	// the number of bytes written.
	Save(ctx context.Context, ticketID uint, originalName string, content io.Reader) (string, int64, error)
	// Remove deletes a stored blob by its root-relative path.
	Remove(ctx context.Context, storedPath string) error
	// Root returns the absolute storage root.
	Root() string
}

type LocalStore struct {
	root   string
	logger logger.Interface
}

func NewLocalStore(root string, logger logger.Interface) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &LocalStore{root: abs, logger: logger}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(ctx context.Context, ticketID uint, originalName string, content io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	dir := fmt.Sprintf("ticket_%d", ticketID)
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create ticket directory: %w", err)
	}

	name := uuid.NewString() + sanitizeExt(originalName)
	relPath := filepath.Join(dir, name)
	absPath := filepath.Join(s.root, relPath)

	f, err := os.OpenFile(absPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}

	written, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(absPath)
		return "", 0, fmt.Errorf("failed to write attachment: %w", err)
	}

	s.logger.Infow("attachment stored", "ticket_id", ticketID, "path", relPath, "size", written)
	return filepath.ToSlash(relPath), written, nil
}

func (s *LocalStore) Remove(ctx context.Context, storedPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := s.resolve(storedPath)
	if err != nil {
		return err
	}

	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment: %w", err)
	}
	return nil
}

// resolve maps a stored relative path to an absolute one, rejecting
// anything that escapes the root.
func (s *LocalStore) resolve(storedPath string) (string, error) {
	abs := filepath.Join(s.root, filepath.FromSlash(storedPath))
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid attachment path")
	}
	return abs, nil
}

// sanitizeExt keeps only a plausible file extension from the uploaded
// name; anything suspicious is dropped.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
