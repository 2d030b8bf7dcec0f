package response

import (
	"testing"

	"espaco_castro/internal/domain/entities"
)

func TestFromDateRanges(t *testing.T) {
	out := FromDateRanges([]entities.DateRange{
		{Start: "2025-06-10", End: "2025-06-11"},
		{Start: "2025-06-10", End: "2025-06-11"},
	})
	if len(out) != 2 {
		t.Fatalf("duplicates must survive, got %+v", out)
	}
	if out[0].Start != "2025-06-10" || out[0].End != "2025-06-11" {
		t.Fatalf("unexpected mapping: %+v", out[0])
	}
}

func TestFromDateRanges_EmptyIsNotNil(t *testing.T) {
	if FromDateRanges(nil) == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
