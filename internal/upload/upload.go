package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL prefix under which stored files are served
// read-only.
const PublicPrefix = "/uploads"

// Service writes multipart uploads into a local directory. Filenames get a
// millisecond timestamp prefix, which keeps the namespace append-only without
// locking; collisions within the same millisecond are treated as negligible.
type Service struct {
	Dir string
}

func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload.NewService: %w", err)
	}
	return &Service{Dir: dir}, nil
}

// Save persists one uploaded file and returns its public path
// ("/uploads/<name>").
func (s *Service) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(fh.Filename))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// SaveAll stores every file and returns the public paths in input order.
func (s *Service) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		p, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Remove deletes the file behind a public path. Paths outside the public
// mount are ignored.
func (s *Service) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix+"/") {
		return nil
	}
	name := path.Base(publicPath)
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
		return fmt.Errorf("upload.Remove: %w", err)
	}
	return nil
}

// sanitize strips any directory components and whitespace from a
// client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) {
		name = "file"
	}
	return name
}
