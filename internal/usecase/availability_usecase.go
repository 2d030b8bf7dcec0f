package usecase

import (
	"context"

	"espaco_castro/internal/domain/entities"
	"espaco_castro/internal/usecase/interfaces"
)

// IAvailabilityUseCase projects confirmed inquiries into the calendar ranges
// the public booking form must block.

type IAvailabilityUseCase interface {
	UnavailableRanges(ctx context.Context) ([]entities.DateRange, error)
}

type AvailabilityUseCase struct {
	repo interfaces.IInquiryRepository
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(repo interfaces.IInquiryRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{repo: repo}
}

// UnavailableRanges returns one {start, end} pair per completed inquiry.
// Pending inquiries never contribute. Ranges are not merged or deduplicated;
// consumers treat the list as OR-combined exclusions with inclusive bounds.
func (u *AvailabilityUseCase) UnavailableRanges(ctx context.Context) ([]entities.DateRange, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	ranges := make([]entities.DateRange, 0, len(records))
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		ranges = append(ranges, entities.DateRange{Start: rec.CheckIn, End: rec.CheckOut})
	}
	return ranges, nil
}
