package response

import "espaco_castro/internal/domain/entities"

// UnavailableRangeResponse is one blocked [start, end] calendar-day pair, both
// bounds inclusive, exactly as the booking form's date picker consumes it.
type UnavailableRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func FromDateRanges(ranges []entities.DateRange) []UnavailableRangeResponse {
	out := make([]UnavailableRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, UnavailableRangeResponse{Start: r.Start, End: r.End})
	}
	return out
}
