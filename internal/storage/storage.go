// Package storage keeps uploaded resources such as profile pictures and group logos.
package storage

import (
	"context"
	"io"
)

// Storage saves and deletes uploaded files
type Storage interface {
	// Save stores data under key and returns the public URL of the file
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key; missing files are not an error
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the key of a URL returned by Save, false for foreign URLs
	KeyFromURL(url string) (string, bool)
}
