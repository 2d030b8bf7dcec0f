package usecase

import (
	"context"
	"errors"
	"testing"

	"espaco_castro/internal/domain/entities"
	mock_interfaces "espaco_castro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAvailabilityUseCase_UnavailableRanges(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewAvailabilityUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.UnavailableRanges(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("only completed inquiries contribute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewAvailabilityUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Inquiry{
			{ID: "a", Completed: true, CheckIn: "2025-06-10", CheckOut: "2025-06-11"},
			{ID: "b", Completed: false, CheckIn: "2025-06-20", CheckOut: "2025-06-21"},
			{ID: "c", Completed: true, CheckIn: "2025-07-01", CheckOut: "2025-07-03"},
		}, nil)

		ranges, err := uc.UnavailableRanges(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranges) != 2 {
			t.Fatalf("expected 2 ranges, got %d: %+v", len(ranges), ranges)
		}
		if ranges[0] != (entities.DateRange{Start: "2025-06-10", End: "2025-06-11"}) {
			t.Fatalf("unexpected first range: %+v", ranges[0])
		}
		if ranges[1] != (entities.DateRange{Start: "2025-07-01", End: "2025-07-03"}) {
			t.Fatalf("unexpected second range: %+v", ranges[1])
		}
	})

	t.Run("overlapping ranges are not merged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewAvailabilityUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Inquiry{
			{ID: "a", Completed: true, CheckIn: "2025-06-10", CheckOut: "2025-06-15"},
			{ID: "b", Completed: true, CheckIn: "2025-06-12", CheckOut: "2025-06-20"},
		}, nil)

		ranges, err := uc.UnavailableRanges(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranges) != 2 {
			t.Fatalf("expected both overlapping ranges, got %+v", ranges)
		}
	})

	t.Run("no completed inquiries yields an empty list, not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewAvailabilityUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Inquiry{
			{ID: "a", Completed: false, CheckIn: "2025-06-10", CheckOut: "2025-06-11"},
		}, nil)

		ranges, err := uc.UnavailableRanges(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ranges == nil || len(ranges) != 0 {
			t.Fatalf("expected empty slice, got %+v", ranges)
		}
	})
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical ranges", "2025-06-10", "2025-06-11", "2025-06-10", "2025-06-11", true},
		{"touching at start boundary", "2025-06-11", "2025-06-12", "2025-06-10", "2025-06-11", true},
		{"touching at end boundary", "2025-06-09", "2025-06-10", "2025-06-10", "2025-06-11", true},
		{"one day before", "2025-06-08", "2025-06-09", "2025-06-10", "2025-06-11", false},
		{"one day after", "2025-06-12", "2025-06-13", "2025-06-10", "2025-06-11", false},
		{"containment", "2025-06-01", "2025-06-30", "2025-06-10", "2025-06-11", true},
		{"single-day range inside", "2025-06-10", "2025-06-10", "2025-06-01", "2025-06-30", true},
		{"malformed date never overlaps", "junho", "2025-06-10", "2025-06-01", "2025-06-30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("rangesOverlap(%s,%s,%s,%s) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}
