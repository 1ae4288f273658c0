package dto

import (
	"time"

	"github.com/anvaya-club/backend/internal/app/models"
)

// activityDateFormat is the wire format of activity_date values.
const activityDateFormat = "2006-01-02"

// ActivityResponse represents an activity on the wire. The date is
// serialized as YYYY-MM-DD.
type ActivityResponse struct {
	ID                 int64   `json:"id"`
	WingID             int64   `json:"wing_id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ActivityDate       string  `json:"activity_date" example:"2024-03-15"`
	FacultyCoordinator *string `json:"faculty_coordinator"`
	ReportURL          *string `json:"report_url"`
	ReportCloudinaryID *string `json:"report_cloudinary_id"`
}

// NewActivityResponse converts an activity model to its wire representation
func NewActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:                 a.ID,
		WingID:             a.WingID,
		Title:              a.Title,
		Description:        a.Description,
		ActivityDate:       a.ActivityDate.Format(activityDateFormat),
		FacultyCoordinator: a.FacultyCoordinator,
		ReportURL:          a.ReportURL,
		ReportCloudinaryID: a.ReportCloudinaryID,
	}
}

// NewActivityResponses converts a slice of activity models
func NewActivityResponses(activities []*models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, NewActivityResponse(a))
	}
	return responses
}

// ParseActivityDate parses an activity_date form value
func ParseActivityDate(value string) (time.Time, error) {
	return time.Parse(activityDateFormat, value)
}
