package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

const (
	propertySubdir = "properties"
	sniffLen       = 3072
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// LocalImageStore writes listing photos under dir/properties and returns the
// public URL they are served from. The file type is sniffed from content,
// never trusted from the client.
type LocalImageStore struct {
	dir          string
	publicPath   string
	maxFileBytes int64
	logger       logger.Interface
	now          func() time.Time
}

func NewLocalImageStore(dir, publicPath string, maxFileBytes int64, log logger.Interface) (*LocalImageStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, propertySubdir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{
		dir:          dir,
		publicPath:   "/" + strings.Trim(publicPath, "/"),
		maxFileBytes: maxFileBytes,
		logger:       log,
		now:          time.Now,
	}, nil
}

// Save stores one image and returns its URL. A non-image or oversized file
// is a BadRequest.
func (s *LocalImageStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", errors.NewBadRequestError("Empty file")
	}

	ext, ok := allowedImageTypes[mimetype.Detect(head).String()]
	if !ok {
		return "", errors.NewBadRequestError("Chỉ chấp nhận file ảnh (jpeg, jpg, png, gif, webp)")
	}

	name := s.fileName(originalName, ext)
	target := filepath.Join(s.dir, propertySubdir, name)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	limited := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), s.maxFileBytes+1)
	written, copyErr := io.Copy(f, limited)
	closeErr := f.Close()
	if copyErr == nil && written > s.maxFileBytes {
		copyErr = errors.NewBadRequestError(fmt.Sprintf("File too large, max %d bytes", s.maxFileBytes))
	}
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = os.Remove(target)
		if errors.IsAppError(copyErr) {
			return "", copyErr
		}
		return "", fmt.Errorf("failed to write image file: %w", copyErr)
	}

	s.logger.Debugw("image stored", "file", name, "bytes", written)
	return path.Join(s.publicPath, propertySubdir, name), nil
}

// Remove deletes a previously stored image by URL. Unknown URLs are ignored.
func (s *LocalImageStore) Remove(url string) error {
	prefix := path.Join(s.publicPath, propertySubdir) + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, prefix))
	if err := os.Remove(filepath.Join(s.dir, propertySubdir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

func (s *LocalImageStore) fileName(originalName, ext string) string {
	base := filepath.Base(originalName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Trim(unsafeNameChars.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "image"
	}
	if len(base) > 60 {
		base = base[:60]
	}
	return fmt.Sprintf("%s-%d-%d%s", base, s.now().UnixMilli(), rand.Int64N(1e9), ext)
}
