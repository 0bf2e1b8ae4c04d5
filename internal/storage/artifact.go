// Package storage owns the artifact namespace for uploaded test
// definitions. References handed out are opaque; nothing outside this
// package resolves them to filesystem paths.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mazation/praktikaBack/internal/apperr"
)

// ArtifactStore persists raw test-definition bytes and reads them back
// by opaque reference. Artifacts are immutable once stored.
type ArtifactStore interface {
	Put(data []byte) (string, error)
	Get(ref string) ([]byte, error)
}

type fsArtifactStore struct {
	base string
}

// NewFSArtifactStore returns an ArtifactStore writing under base,
// creating it if needed. Names are uuid-derived, so they are unique by
// construction and need no lock or collision check.
func NewFSArtifactStore(base string) (ArtifactStore, error) {
	if base == "" {
		base = "./artifacts"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact directory %s: %w", base, err)
	}
	return &fsArtifactStore{base: base}, nil
}

func (s *fsArtifactStore) Put(data []byte) (string, error) {
	ref := uuid.NewString() + ".csv"
	if err := os.WriteFile(filepath.Join(s.base, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", ref, err)
	}
	return ref, nil
}

func (s *fsArtifactStore) Get(ref string) ([]byte, error) {
	// Clean keeps a hostile ref inside the artifact directory.
	data, err := os.ReadFile(filepath.Join(s.base, filepath.Base(filepath.Clean(ref))))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("artifact %s: %w", ref, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("reading artifact %s: %w", ref, err)
	}
	return data, nil
}
