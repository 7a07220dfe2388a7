package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores files on the local filesystem, served under urlPrefix
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// BaseDir returns the root directory of the stored files
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// URLPrefix returns the URL prefix the files are served under
func (s *LocalStorage) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStorage) path(key string) (string, error) {
	dest := filepath.Join(s.baseDir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.baseDir, dest)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return dest, nil
}

// Save writes data to baseDir/key
func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

// Delete removes baseDir/key
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

// KeyFromURL strips the URL prefix from a URL produced by Save
func (s *LocalStorage) KeyFromURL(url string) (string, bool) {
	key, found := strings.CutPrefix(url, s.urlPrefix+"/")
	if !found || key == "" {
		return "", false
	}
	return key, true
}
