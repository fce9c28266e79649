// Package storage persists uploaded product images on local disk and hands
// back the public URL under which the HTTP layer serves them.
package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the path under which stored files are served.
const URLPrefix = "/uploads"

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ErrUnsupportedType rejects uploads outside the image extension whitelist.
var ErrUnsupportedType = fmt.Errorf("unsupported file type")

// LocalStore writes files under Dir and builds URLs from BaseURL, e.g.
// "https://shop.example.com". An empty BaseURL yields relative URLs.
type LocalStore struct {
	dir     string
	baseURL string
	logger  *log.Logger
}

func NewLocal(dir, baseURL string, logger *log.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save stores the upload under a random name that keeps the original
// extension and returns the public URL. Uploads are independent, so retrying
// a failed one just produces a new name.
func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	url := s.baseURL + URLPrefix + "/" + name
	s.logger.Printf("storage: saved %s as %s", originalName, name)
	return url, nil
}
