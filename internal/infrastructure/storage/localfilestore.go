package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalFileStore writes attachment content under a directory on the local
// filesystem and reports the URL the file will be served at through the
// static uploads route.
type LocalFileStore struct {
	dir          string
	publicPrefix string
}

func NewLocalFileStore(dir, publicPrefix string) *LocalFileStore {
	return &LocalFileStore{
		dir:          dir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

// Save stores content under a collision-free name derived from filename and
// returns the public URL. The random prefix keeps two uploads of
// "invoice.pdf" from clobbering each other.
func (s *LocalFileStore) Save(ctx context.Context, filename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name, err := uniqueName(filename)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}

	return s.publicPrefix + "/" + name, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalFileStore) Dir() string {
	return s.dir
}

func uniqueName(filename string) (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	return hex.EncodeToString(buf[:]) + "_" + sanitizeFilename(filename), nil
}

// sanitizeFilename strips directory components and characters that are
// unsafe in a URL path segment.
func sanitizeFilename(filename string) string {
	base := path.Base(filepath.ToSlash(filename))
	if base == "." || base == "/" || base == "" {
		return "file"
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	if strings.Trim(cleaned, "._") == "" {
		return "file"
	}
	return cleaned
}
