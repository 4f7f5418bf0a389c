package gateway

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"trip-reconciliation/internal/domain"
)

// FileDocumentSource reads vendor dumps from the local filesystem.
type FileDocumentSource struct {
	maxBytes int64
}

// NewFileDocumentSource creates a source rejecting files larger than
// maxBytes. Zero or less means no limit.
func NewFileDocumentSource(maxBytes int64) *FileDocumentSource {
	return &FileDocumentSource{maxBytes: maxBytes}
}

// Fetch reads the file at path. The document keeps only the base name, as
// an uploaded file would. Oversized files are rejected with a
// *domain.DocumentError.
func (s *FileDocumentSource) Fetch(ctx context.Context, path string) (domain.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return domain.SourceDocument{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return domain.SourceDocument{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if s.maxBytes > 0 {
		r = io.LimitReader(file, s.maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return domain.SourceDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if s.maxBytes > 0 && int64(len(content)) > s.maxBytes {
		return domain.SourceDocument{}, domain.NewDocumentError(filepath.Base(path),
			fmt.Errorf("%w: more than %d bytes", domain.ErrDocumentTooLarge, s.maxBytes))
	}
	return domain.SourceDocument{FileName: filepath.Base(path), Content: content}, nil
}
