package usecase

import (
	"time"

	"espaco_castro/internal/domain/entities"
)

// parseDay parses a YYYY-MM-DD string as a local-midnight day boundary.
func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// rangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share at
// least one calendar day. Boundaries are inclusive. Malformed dates never
// overlap anything.
func rangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, ok := parseDay(aStart)
	if !ok {
		return false
	}
	ae, ok := parseDay(aEnd)
	if !ok {
		return false
	}
	bs, ok := parseDay(bStart)
	if !ok {
		return false
	}
	be, ok := parseDay(bEnd)
	if !ok {
		return false
	}
	return !as.After(be) && !bs.After(ae)
}
