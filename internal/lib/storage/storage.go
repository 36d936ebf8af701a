// Package storage keeps uploaded files on local disk under a single
// directory that is also served statically.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/google/uuid"
)

// ErrInvalidName is returned for names that would escape the upload dir.
var ErrInvalidName = errors.New("invalid file name")

type Store struct {
	dir    string
	prefix string
}

// New creates dir if needed. prefix is the public URL path dir is served at.
func New(dir, prefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir, prefix: "/" + strings.Trim(prefix, "/")}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save copies src into a new uniquely named file keeping the original
// extension, lowercased.
func (s *Store) Save(src io.Reader, originalName string) (model.UploadedFile, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("failed to create %s: %w", name, err)
	}

	size, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return model.UploadedFile{}, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return model.UploadedFile{
		URL:          s.URL(name),
		Filename:     name,
		OriginalName: originalName,
		Size:         size,
	}, nil
}

// Path resolves a stored file name to its location on disk.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// URL is the public path of a stored file name.
func (s *Store) URL(name string) string {
	return path.Join(s.prefix, name)
}

// Exists reports whether name is a regular file in the store.
func (s *Store) Exists(name string) bool {
	p, err := s.Path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes name, ignoring files that are already gone.
func (s *Store) Remove(name string) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
