package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mazation/praktikaBack/internal/apperr"
)

func newTestStore(t *testing.T) ArtifactStore {
	t.Helper()
	store, err := NewFSArtifactStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSArtifactStore: %v", err)
	}
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("q;a;b;c;d;1;\n")

	ref, err := store.Put(payload)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ref == "" {
		t.Fatal("Put returned empty ref")
	}
	if filepath.IsAbs(ref) || strings.ContainsRune(ref, filepath.Separator) {
		t.Errorf("ref %q leaks path structure, want opaque name", ref)
	}

	got, err := store.Get(ref)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get = %q, want %q", got, payload)
	}
}

func TestPutIdenticalPayloadsGetDistinctRefs(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("same bytes")

	ref1, err := store.Put(payload)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	ref2, err := store.Put(payload)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ref1 == ref2 {
		t.Errorf("two Puts produced the same ref %q", ref1)
	}
}

func TestGetUnknownRef(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get("no-such-artifact.csv")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get unknown ref error = %v, want ErrNotFound", err)
	}
}
