package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/middleware"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

const (
	photoPageDefaultLimit = 100
	photoPageMaxLimit     = 500
	latestPhotosDefault   = 10
	latestPhotosMaxLimit  = 100
)

// PhotoController handles wing photo endpoints
type PhotoController struct {
	photoService services.PhotoService
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService services.PhotoService) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// ListByWing godoc
// @Summary List a wing's photos
// @Description Returns a page of photos, newest first
// @Tags photos
// @Produce json
// @Param slug path string true "Wing slug"
// @Param limit query int false "Page size (1-500)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /wings/{slug}/photos [get]
func (pc *PhotoController) ListByWing(c *gin.Context) {
	limit, err := parseBoundedQueryInt(c, "limit", photoPageDefaultLimit, 1, photoPageMaxLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	offset, err := parseBoundedQueryInt(c, "offset", 0, 0, int(^uint(0)>>1))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	photos, err := pc.photoService.ListByWing(c.Request.Context(), c.Param("slug"), limit, offset)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPhotoResponses(photos))
}

// Latest godoc
// @Summary List a wing's newest photos
// @Tags photos
// @Produce json
// @Param slug path string true "Wing slug"
// @Param limit query int false "Number of photos (1-100)" default(10)
// @Success 200 {array} dto.PhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /wings/{slug}/photos/latest [get]
func (pc *PhotoController) Latest(c *gin.Context) {
	limit, err := parseBoundedQueryInt(c, "limit", latestPhotosDefault, 1, latestPhotosMaxLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	photos, err := pc.photoService.LatestByWing(c.Request.Context(), c.Param("slug"), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPhotoResponses(photos))
}

// Upload godoc
// @Summary Upload photos to a wing
// @Description Uploads a batch of images and records one photo per asset
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param wing_id formData int true "Target wing ID"
// @Param files formData file true "Image files"
// @Success 201 {array} dto.PhotoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /admin/photos [post]
func (pc *PhotoController) Upload(c *gin.Context) {
	wingID, err := strconv.ParseInt(c.PostForm("wing_id"), 10, 64)
	if err != nil || wingID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewValidationField("wing_id must be a positive integer", "wing_id"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidation("Invalid multipart form"))
		return
	}

	headers := form.File["files"]
	files := make([]services.FileInput, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewFileUpload("Failed to read uploaded file", header.Filename))
			return
		}
		defer file.Close()
		files = append(files, services.FileInput{Filename: header.Filename, Reader: file})
	}

	photos, err := pc.photoService.Upload(c.Request.Context(), wingID, files)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPhotoResponses(photos))
}

// Delete godoc
// @Summary Delete a photo
// @Description Removes the photo row after a best-effort remote asset delete
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/photos/{id} [delete]
func (pc *PhotoController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := pc.photoService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo deleted successfully"})
}
