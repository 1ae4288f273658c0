package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/middleware"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

const (
	activityDefaultLimit = 1000
	activityMaxLimit     = 5000
)

// ActivityController handles activity endpoints
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// ListByWing godoc
// @Summary List a wing's activities
// @Tags activities
// @Produce json
// @Param slug path string true "Wing slug"
// @Param limit query int false "Maximum results (1-5000)" default(1000)
// @Success 200 {array} dto.ActivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /wings/{slug}/activities [get]
func (ac *ActivityController) ListByWing(c *gin.Context) {
	limit, err := parseBoundedQueryInt(c, "limit", activityDefaultLimit, 1, activityMaxLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	activities, err := ac.activityService.ListByWing(c.Request.Context(), c.Param("slug"), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponses(activities))
}

// ListAll godoc
// @Summary List activities across all wings
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum results (1-5000)" default(1000)
// @Success 200 {array} dto.ActivityResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /activities [get]
func (ac *ActivityController) ListAll(c *gin.Context) {
	limit, err := parseBoundedQueryInt(c, "limit", activityDefaultLimit, 1, activityMaxLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	activities, err := ac.activityService.ListAll(c.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponses(activities))
}

// GetByID godoc
// @Summary Get a single activity
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /activities/{id} [get]
func (ac *ActivityController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	activity, err := ac.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// Create godoc
// @Summary Create an activity
// @Description Records a new wing activity with an optional PDF report
// @Tags activities
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param wing_id formData int true "Owning wing ID"
// @Param title formData string true "Activity title"
// @Param description formData string true "Activity description"
// @Param activity_date formData string true "Activity date (YYYY-MM-DD)"
// @Param faculty_coordinator formData string false "Faculty coordinator"
// @Param report_file formData file false "PDF report"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /admin/activities [post]
func (ac *ActivityController) Create(c *gin.Context) {
	wingID, err := strconv.ParseInt(c.PostForm("wing_id"), 10, 64)
	if err != nil || wingID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewValidationField("wing_id must be a positive integer", "wing_id"))
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		middleware.HandleAPIError(c, apperrors.NewValidation("title and description are required"))
		return
	}

	activityDate, err := dto.ParseActivityDate(c.PostForm("activity_date"))
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationField("activity_date must be YYYY-MM-DD", "activity_date"))
		return
	}

	input := services.ActivityCreateInput{
		WingID:       wingID,
		Title:        title,
		Description:  description,
		ActivityDate: activityDate,
	}
	if coordinator, ok := c.GetPostForm("faculty_coordinator"); ok {
		input.FacultyCoordinator = &coordinator
	}

	report, cleanup, err := optionalFormFile(c, "report_file")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	defer cleanup()
	input.Report = report

	activity, err := ac.activityService.Create(c.Request.Context(), input)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewActivityResponse(activity))
}

// Update godoc
// @Summary Update an activity
// @Description Applies only the supplied fields, optionally replacing the PDF report
// @Tags activities
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param title formData string false "Activity title"
// @Param description formData string false "Activity description"
// @Param activity_date formData string false "Activity date (YYYY-MM-DD)"
// @Param faculty_coordinator formData string false "Faculty coordinator"
// @Param report_file formData file false "Replacement PDF report"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /admin/activities/{id} [put]
func (ac *ActivityController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var input services.ActivityUpdateInput
	if title, ok := c.GetPostForm("title"); ok {
		input.Title = &title
	}
	if description, ok := c.GetPostForm("description"); ok {
		input.Description = &description
	}
	if coordinator, ok := c.GetPostForm("faculty_coordinator"); ok {
		input.FacultyCoordinator = &coordinator
	}
	if dateStr, ok := c.GetPostForm("activity_date"); ok {
		activityDate, err := dto.ParseActivityDate(dateStr)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationField("activity_date must be YYYY-MM-DD", "activity_date"))
			return
		}
		input.ActivityDate = &activityDate
	}

	report, cleanup, err := optionalFormFile(c, "report_file")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	defer cleanup()
	input.Report = report

	activity, err := ac.activityService.Update(c.Request.Context(), id, input)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// Delete godoc
// @Summary Delete an activity
// @Description Removes the activity after a best-effort delete of its report asset
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/activities/{id} [delete]
func (ac *ActivityController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ac.activityService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Activity deleted successfully"})
}

// optionalFormFile opens a multipart file field when present. The returned
// cleanup is always safe to call.
func optionalFormFile(c *gin.Context, name string) (*services.FileInput, func(), error) {
	noop := func() {}

	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, apperrors.NewValidation("Invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, apperrors.NewFileUpload("Failed to read uploaded file", header.Filename)
	}

	return &services.FileInput{Filename: header.Filename, Reader: file}, func() { file.Close() }, nil
}
