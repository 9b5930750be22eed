package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"hawkerhero/internal/errors"
)

// FieldName is the multipart field carrying an entity image.
const FieldName = "image"

const maxImageBytes = 5 << 20

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Store writes uploaded images into a directory served as static files.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir is the directory images are written to.
func (s *Store) Dir() string { return s.dir }

// Save stores fh under a unique name derived from the original filename and
// returns that name. Non-image content is rejected with a validation error.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageBytes {
		return "", errors.NewValidationError(FieldName, "Image must be 5 MB or smaller.")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	ext, ok := allowedTypes[http.DetectContentType(head[:n])]
	if !ok {
		return "", errors.NewValidationError(FieldName, "Only JPEG, PNG, GIF or WebP images are allowed.")
	}

	name := fmt.Sprintf("%s-%s%s", uuid.NewString()[:8], slug(fh.Filename), ext)
	if err := s.write(name, io.MultiReader(bytes.NewReader(head[:n]), src)); err != nil {
		return "", err
	}
	return name, nil
}

// write creates name in the store and copies src into it. A partially
// written file is removed.
func (s *Store) write(name string, src io.Reader) error {
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.Remove(name)
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// Remove deletes a previously saved image. Empty names, names outside the
// store and already missing files are ignored.
func (s *Store) Remove(name string) error {
	if s == nil || name == "" || filepath.Base(name) != name {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func slug(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")
	if len(base) > 40 {
		base = base[:40]
	}
	if base == "" {
		return "image"
	}
	return base
}
