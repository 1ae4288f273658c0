package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/middleware"
)

// WingController handles public wing endpoints
type WingController struct {
	wingService services.WingService
}

// NewWingController creates a new WingController
func NewWingController(wingService services.WingService) *WingController {
	return &WingController{wingService: wingService}
}

// ListWings godoc
// @Summary List all wings
// @Tags wings
// @Produce json
// @Success 200 {array} dto.WingResponse
// @Router /wings [get]
func (wc *WingController) ListWings(c *gin.Context) {
	wings, err := wc.wingService.ListWings(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWingResponses(wings))
}

// GetWing godoc
// @Summary Get a wing with its activities and photos
// @Tags wings
// @Produce json
// @Param slug path string true "Wing slug"
// @Success 200 {object} dto.WingWithRelationsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /wings/{slug} [get]
func (wc *WingController) GetWing(c *gin.Context) {
	wing, err := wc.wingService.GetWingDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWingWithRelationsResponse(wing))
}
