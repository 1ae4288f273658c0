package mediastore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore implements Uploader against the Cloudinary API.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a Cloudinary-backed media store.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

// UploadImage stores an image file under folder.
func (s *CloudinaryStore) UploadImage(ctx context.Context, file io.Reader, folder string) (*Asset, error) {
	return s.upload(ctx, file, folder, "image")
}

// UploadReport stores a PDF report under folder.
func (s *CloudinaryStore) UploadReport(ctx context.Context, file io.Reader, folder string) (*Asset, error) {
	return s.upload(ctx, file, folder, "raw")
}

func (s *CloudinaryStore) upload(ctx context.Context, file io.Reader, folder, resourceType string) (*Asset, error) {
	// A generated public ID keeps repeated uploads of the same filename from
	// colliding within a wing's folder.
	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     uuid.New().String(),
		Folder:       folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload rejected: %s", result.Error.Message)
	}
	return &Asset{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage removes an image by its public ID.
func (s *CloudinaryStore) DeleteImage(ctx context.Context, publicID string) error {
	return s.destroy(ctx, publicID, "image")
}

// DeleteReport removes a report by its public ID.
func (s *CloudinaryStore) DeleteReport(ctx context.Context, publicID string) error {
	return s.destroy(ctx, publicID, "raw")
}

func (s *CloudinaryStore) destroy(ctx context.Context, publicID, resourceType string) error {
	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q for %s", result.Result, publicID)
	}
	return nil
}
