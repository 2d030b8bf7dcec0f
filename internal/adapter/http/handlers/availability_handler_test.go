package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"espaco_castro/internal/adapter/http/handlers/mocks"
	"espaco_castro/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler_GetUnavailableDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns the range list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/api/unavailable-dates", h.GetUnavailableDates)

		uc.EXPECT().UnavailableRanges(gomock.Any()).Return([]entities.DateRange{
			{Start: "2025-06-10", End: "2025-06-11"},
			{Start: "2025-07-01", End: "2025-07-03"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/unavailable-dates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["start"] != "2025-06-10" || body[1]["end"] != "2025-07-03" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty list serializes as [] not null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/api/unavailable-dates", h.GetUnavailableDates)

		uc.EXPECT().UnavailableRanges(gomock.Any()).Return([]entities.DateRange{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/unavailable-dates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("store failure answers 500 with the fixed message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/api/unavailable-dates", h.GetUnavailableDates)

		uc.EXPECT().UnavailableRanges(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/api/unavailable-dates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Failed to fetch unavailable dates") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
