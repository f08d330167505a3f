package upload

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxFileSize is the largest accepted upload, 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var (
	// ErrFileTooLarge is returned for uploads over MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the 5MB limit")
	// ErrInvalidFileType is returned for anything but jpg/jpeg/png.
	ErrInvalidFileType = errors.New("only JPG and PNG files are allowed")
)

// Storage saves uploaded images on local disk under generated names.
type Storage struct {
	dir string
}

// NewStorage creates the upload directory if needed and returns a Storage.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Storage) Dir() string {
	return s.dir
}

// Save validates size and extension, then writes the file under a unique
// generated name and returns that name.
func (s *Storage) Save(originalName string, size int64, src io.Reader) (string, error) {
	if size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFileType
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// LimitReader guards against a size header smaller than the body.
	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1)); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	log.Info().Str("filename", filename).Int64("size", size).Msg("stored uploaded image")
	return filename, nil
}

// Delete removes a stored file; a missing file is not an error.
func (s *Storage) Delete(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
