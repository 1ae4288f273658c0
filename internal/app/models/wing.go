package models

// Wing represents an organizational unit of the club. Wings are created by
// seeding, never through the API; the slug is immutable because uploaded
// media folder paths are derived from it.
type Wing struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// WingWithRelations is a wing together with its activities (newest first)
// and photos (newest first).
type WingWithRelations struct {
	Wing
	Activities []*Activity `json:"activities"`
	Photos     []*Photo    `json:"photos"`
}
