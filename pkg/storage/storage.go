// Package storage writes uploaded files to a backend and hands back their
// public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"shopconsole.io/pkg/apperrors"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Backend persists uploaded objects under a key.
type Backend interface {
	// Save stores r under key and returns the object's public URL.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// AllowedExtensions are the accepted image file extensions.
var AllowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]+`)

const maxNameLength = 80

// maxExtLength bounds the extension kept when a long name is truncated.
const maxExtLength = 16

// SanitizeName reduces an uploaded filename to a safe lowercase base name of
// at most maxNameLength bytes.
func SanitizeName(name string) string {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "file"
	}
	if len(base) > maxNameLength {
		ext := filepath.Ext(base)
		if len(ext) > maxExtLength {
			ext = ext[:maxExtLength]
		}
		base = base[:maxNameLength-len(ext)] + ext
	}
	return base
}

// NewKey returns a collision free object key: <unix-millis>-<uuid>-<name>.
func NewKey(originalName string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), SanitizeName(originalName))
}

// CheckUpload rejects files with a non image extension or over maxBytes.
func CheckUpload(field, name string, size, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !AllowedExtensions[ext] {
		return apperrors.Validation("%s: file type %q is not allowed", field, ext)
	}
	if size > maxBytes {
		return apperrors.Validation("%s: file is %s, the limit is %s",
			field, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(maxBytes)))
	}
	return nil
}

// KeyFromURL returns the trailing path segment of an object URL.
func KeyFromURL(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
