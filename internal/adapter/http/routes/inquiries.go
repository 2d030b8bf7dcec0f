package routes

import (
	"espaco_castro/internal/adapter/http/handlers"
	"espaco_castro/internal/adapter/http/middleware"
	"espaco_castro/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries        = "/inquiries"
	PathUnavailableDates = "/unavailable-dates"
	PathAdminLogin       = "/admin/login"
)

func addInquiryRoutes(
	rg *gin.RouterGroup,
	inquiryHandler *handlers.InquiryHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	authHandler *handlers.AuthHandler,
	auth usecase.IAuthUseCase,
) {
	// Public: booking form intake and the calendar feed.
	rg.POST(PathInquiries, inquiryHandler.Create)
	rg.GET(PathUnavailableDates, availabilityHandler.GetUnavailableDates)
	rg.POST(PathAdminLogin, authHandler.Login)

	// Admin: everything that reads or mutates stored inquiries.
	admin := rg.Group("", middleware.RequireAdmin(auth))
	{
		admin.GET(PathInquiries, inquiryHandler.List)
		admin.DELETE(PathInquiries+"/:id", inquiryHandler.Delete)
		admin.PATCH(PathInquiries+"/:id/status", inquiryHandler.UpdateStatus)
	}
}
