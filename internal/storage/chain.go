package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"photostudio_backend/internal/logger"
)

// Chain is an ordered list of backends tried in sequence. Writes land on the
// first backend that accepts them, so at most one copy of a blob exists.
// Reads and deletes address whichever backend actually holds the object.
type Chain struct {
	backends []Storage
}

// NewChain builds a chain from one or more backends, primary first.
func NewChain(backends ...Storage) (*Chain, error) {
	if len(backends) == 0 {
		return nil, errors.New("storage chain needs at least one backend")
	}
	return &Chain{backends: backends}, nil
}

// Backends exposes the ordered backend list.
func (c *Chain) Backends() []Storage {
	return c.backends
}

func (c *Chain) Name() string {
	return "chain"
}

// Save writes to the first backend that succeeds. With more than one backend
// the payload is buffered so each attempt sees the full content.
func (c *Chain) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if len(c.backends) == 1 {
		return c.backends[0].Save(ctx, path, reader, contentType)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to buffer payload: %w", err)
	}

	var errs []error
	for _, backend := range c.backends {
		err := backend.Save(ctx, path, bytes.NewReader(data), contentType)
		logger.StorageLog(backend.Name(), "save", path, err)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
	}

	return fmt.Errorf("all storage backends failed: %w", errors.Join(errs...))
}

// Get reads from the first backend holding the object.
func (c *Chain) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	var errs []error
	for _, backend := range c.backends {
		rc, err := backend.Get(ctx, path)
		if err == nil {
			return rc, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
	}

	return nil, fmt.Errorf("object %s not readable on any backend: %w", path, errors.Join(errs...))
}

// Delete removes the object from every backend where it exists. A blob absent
// from all backends is not an error; deletion is idempotent in effect.
func (c *Chain) Delete(ctx context.Context, path string) error {
	var errs []error
	for _, backend := range c.backends {
		exists, err := backend.Exists(ctx, path)
		if err != nil {
			logger.StorageLog(backend.Name(), "exists", path, err)
			errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
			continue
		}
		if !exists {
			continue
		}

		err = backend.Delete(ctx, path)
		logger.StorageLog(backend.Name(), "delete", path, err)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to delete %s: %w", path, errors.Join(errs...))
	}
	return nil
}

// Exists reports whether any backend holds the object.
func (c *Chain) Exists(ctx context.Context, path string) (bool, error) {
	for _, backend := range c.backends {
		exists, err := backend.Exists(ctx, path)
		if err != nil {
			continue
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

// GetURL resolves the URL from the backend holding the object, falling back
// to the primary's URL scheme when the object is nowhere to be found.
func (c *Chain) GetURL(ctx context.Context, path string) (string, error) {
	for _, backend := range c.backends {
		if exists, err := backend.Exists(ctx, path); err == nil && exists {
			return backend.GetURL(ctx, path)
		}
	}
	return c.backends[0].GetURL(ctx, path)
}

// GetSize returns the object size from the first backend holding it.
func (c *Chain) GetSize(ctx context.Context, path string) (int64, error) {
	var errs []error
	for _, backend := range c.backends {
		size, err := backend.GetSize(ctx, path)
		if err == nil {
			return size, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
	}
	return 0, fmt.Errorf("object %s not found on any backend: %w", path, errors.Join(errs...))
}
