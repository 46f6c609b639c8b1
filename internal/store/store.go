// Package store persists whole JSON documents to a single file.
//
// Reads never fail: a missing, unreadable or malformed file yields the
// document's default value, and the LoadResult records why. Writes replace
// the whole file through a temp file and rename.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

type LoadStatus string

const (
	StatusLoaded    LoadStatus = "loaded"
	StatusMissing   LoadStatus = "missing"
	StatusRecovered LoadStatus = "recovered"
)

type LoadResult[T any] struct {
	Document T
	Status   LoadStatus
	// Cause is set when Status is StatusRecovered.
	Cause error
}

// Recovered reports whether the document is a default substituted for a bad file.
func (r LoadResult[T]) Recovered() bool {
	return r.Status == StatusRecovered
}

type Store[T any] struct {
	path      string
	defaults  func() T
	normalize func(*T)
	logger    *slog.Logger
}

type Option[T any] func(*Store[T])

func WithNormalizer[T any](fn func(*T)) Option[T] {
	return func(s *Store[T]) {
		s.normalize = fn
	}
}

func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Store[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New[T any](path string, defaults func() T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		path:     path,
		defaults: defaults,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) Path() string {
	return s.path
}

func (s *Store[T]) Load() LoadResult[T] {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult[T]{Document: s.defaults(), Status: StatusMissing}
		}
		return s.recover(fmt.Errorf("read %s: %w", s.path, err))
	}

	doc := s.defaults()
	if err := json.Unmarshal(data, &doc); err != nil {
		return s.recover(fmt.Errorf("decode %s: %w", s.path, err))
	}
	if s.normalize != nil {
		s.normalize(&doc)
	}
	return LoadResult[T]{Document: doc, Status: StatusLoaded}
}

func (s *Store[T]) recover(cause error) LoadResult[T] {
	s.logger.Warn("falling back to default document", "path", s.path, "error", cause)
	return LoadResult[T]{Document: s.defaults(), Status: StatusRecovered, Cause: cause}
}

func (s *Store[T]) Save(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
