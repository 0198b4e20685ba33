package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MaxImageSize caps uploaded post images.
const MaxImageSize = 10 << 20 // 10 MB

// Storage persists post image assets and returns the URL they are served
// from.
type Storage interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func validateExtension(ext string) error {
	if !allowedExtensions[strings.ToLower(ext)] {
		return fmt.Errorf("invalid file type: %s", ext)
	}
	return nil
}
