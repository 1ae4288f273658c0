package models

import "time"

// Activity is a dated record of a wing event, optionally carrying an
// attached PDF report hosted externally. ReportURL and ReportCloudinaryID
// are paired: both present or both absent.
type Activity struct {
	ID                 int64     `json:"id"`
	WingID             int64     `json:"wing_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	ActivityDate       time.Time `json:"activity_date"`
	FacultyCoordinator *string   `json:"faculty_coordinator,omitempty"`
	ReportURL          *string   `json:"report_url,omitempty"`
	ReportCloudinaryID *string   `json:"report_cloudinary_id,omitempty"`
}

// ActivityUpdate holds the optional fields of a partial update. Only non-nil
// fields are applied; field names are checked at compile time rather than
// passed as an untyped map.
type ActivityUpdate struct {
	Title              *string
	Description        *string
	ActivityDate       *time.Time
	FacultyCoordinator *string
	ReportURL          *string
	ReportCloudinaryID *string
}

// IsEmpty reports whether the update would change nothing.
func (u ActivityUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.ActivityDate == nil &&
		u.FacultyCoordinator == nil && u.ReportURL == nil && u.ReportCloudinaryID == nil
}

// ActivityWithWing pairs an activity with its owning wing, used by the
// statistics aggregation.
type ActivityWithWing struct {
	Activity Activity
	Wing     Wing
}
