// Package mediastore abstracts the remote media host used for wing photos
// and activity reports.
package mediastore

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// Asset is a stored media object on the remote host.
type Asset struct {
	URL      string
	PublicID string
}

// Uploader is the media host contract consumed by the service layer.
type Uploader interface {
	// UploadImage stores an image file under folder and returns its asset.
	UploadImage(ctx context.Context, file io.Reader, folder string) (*Asset, error)
	// UploadReport stores a PDF report under folder and returns its asset.
	UploadReport(ctx context.Context, file io.Reader, folder string) (*Asset, error)
	// DeleteImage removes an image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
	// DeleteReport removes a report by its public ID.
	DeleteReport(ctx context.Context, publicID string) error
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsAllowedImage reports whether filename carries a permitted image extension.
func IsAllowedImage(filename string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsAllowedReport reports whether filename carries a permitted report extension.
func IsAllowedReport(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// TryDelete runs a remote deletion and logs failures without propagating
// them. Remote cleanup never blocks local state changes.
func TryDelete(ctx context.Context, del func(context.Context, string) error, publicID string) {
	if publicID == "" {
		return
	}
	if err := del(ctx, publicID); err != nil {
		logger.Warn().Err(err).Str("publicID", publicID).Msg("Failed to delete remote media asset, continuing")
	}
}
