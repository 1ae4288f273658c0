package dto

import (
	"time"

	"github.com/anvaya-club/backend/internal/app/models"
)

// PhotoResponse represents a photo on the wire
type PhotoResponse struct {
	ID           int64     `json:"id"`
	WingID       int64     `json:"wing_id"`
	URL          string    `json:"url"`
	CloudinaryID string    `json:"cloudinary_id"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// NewPhotoResponse converts a photo model to its wire representation
func NewPhotoResponse(p *models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		WingID:       p.WingID,
		URL:          p.URL,
		CloudinaryID: p.CloudinaryID,
		UploadedAt:   p.UploadedAt,
	}
}

// NewPhotoResponses converts a slice of photo models
func NewPhotoResponses(photos []*models.Photo) []PhotoResponse {
	responses := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, NewPhotoResponse(p))
	}
	return responses
}
