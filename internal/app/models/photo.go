package models

import "time"

// Photo is an image asset associated with a wing. CloudinaryID references
// the asset on the external media host; the database row is the system of
// record and the remote asset is a best-effort mirror.
type Photo struct {
	ID           int64     `json:"id"`
	WingID       int64     `json:"wing_id"`
	URL          string    `json:"url"`
	CloudinaryID string    `json:"cloudinary_id"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
