package dto

import "github.com/anvaya-club/backend/internal/app/models"

// WingResponse represents a wing on the wire
type WingResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// WingWithRelationsResponse is a wing together with its activities and photos
type WingWithRelationsResponse struct {
	WingResponse
	Activities []ActivityResponse `json:"activities"`
	Photos     []PhotoResponse    `json:"photos"`
}

// NewWingResponse converts a wing model to its wire representation
func NewWingResponse(w *models.Wing) WingResponse {
	return WingResponse{
		ID:   w.ID,
		Slug: w.Slug,
		Name: w.Name,
	}
}

// NewWingResponses converts a slice of wing models
func NewWingResponses(wings []*models.Wing) []WingResponse {
	responses := make([]WingResponse, 0, len(wings))
	for _, w := range wings {
		responses = append(responses, NewWingResponse(w))
	}
	return responses
}

// NewWingWithRelationsResponse converts a wing with loaded relations
func NewWingWithRelationsResponse(w *models.WingWithRelations) WingWithRelationsResponse {
	return WingWithRelationsResponse{
		WingResponse: NewWingResponse(&w.Wing),
		Activities:   NewActivityResponses(w.Activities),
		Photos:       NewPhotoResponses(w.Photos),
	}
}
