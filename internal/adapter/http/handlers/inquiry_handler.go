package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "espaco_castro/internal/adapter/http/dto/request"
	response "espaco_castro/internal/adapter/http/dto/response"
	"espaco_castro/internal/usecase"
	"espaco_castro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry data", http.StatusBadRequest)

// Guard refusals surface in Portuguese; the booking form shows them to the
// visitor as-is.
const (
	msgRateLimited      = "Limite de 3 solicitações por mês atingido. Tente novamente mais tarde."
	msgDuplicateInquiry = "Você já enviou uma solicitação para este pacote. Aguarde nosso contato."
	msgDatesUnavailable = "As datas selecionadas já estão reservadas. Escolha outro período."
)

// InquiryHandler handles the public intake endpoint and the admin operations
// over submitted inquiries.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// Create accepts a booking-form submission and persists it after the
// blocked-date check and the duplicate/rate-limit guard pass.
func (h *InquiryHandler) Create(c *gin.Context) {
	var payload request.InquiryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToSubmitInput(resolveClientIP(c)))
	if err != nil {
		log.Printf("[inquiry][handler] create failed err=%v", err)
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(created))
}

// List returns every inquiry, newest-first. Admin-only; wired behind the
// bearer middleware.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[inquiry][handler] list failed err=%v", err)
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiries(inquiries))
}

// Delete removes an inquiry by id. Deleting an absent id still answers 204.
func (h *InquiryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[inquiry][handler] delete failed id=%s err=%v", id, err)
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus flips the completed flag, which is what feeds the derived
// unavailable-date ranges.
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.InquiryStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, *payload.Completed)
	if err != nil {
		log.Printf("[inquiry][handler] status update failed id=%s err=%v", id, err)
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(updated))
}

// resolveClientIP prefers the first X-Forwarded-For entry and falls back to
// the transport-level peer address.
func resolveClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return c.ClientIP()
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryData):
		return pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateLimited):
		return pkg.NewDomainErrorSimple("INQUIRY_RATE_LIMITED", msgRateLimited, http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrDuplicateInquiry):
		return pkg.NewDomainErrorSimple("INQUIRY_DUPLICATE", msgDuplicateInquiry, http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrDatesUnavailable):
		return pkg.NewDomainErrorSimple("INQUIRY_DATES_UNAVAILABLE", msgDatesUnavailable, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
