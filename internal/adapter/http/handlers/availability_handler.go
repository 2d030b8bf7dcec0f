package handlers

import (
	"log"
	"net/http"

	response "espaco_castro/internal/adapter/http/dto/response"
	"espaco_castro/internal/usecase"
	"espaco_castro/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the derived blocked-range list the booking form
// uses to disable calendar days.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// GetUnavailableDates returns the complete range list or an error — never a
// partial result.
func (h *AvailabilityHandler) GetUnavailableDates(c *gin.Context) {
	ranges, err := h.usecase.UnavailableRanges(c.Request.Context())
	if err != nil {
		log.Printf("[availability][handler] fetch failed err=%v", err)
		appErr := pkg.NewDomainError("UNAVAILABLE_DATES_FETCH_FAILED", "Failed to fetch unavailable dates", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDateRanges(ranges))
}
