package usecase

import (
	"strings"
	"time"

	"espaco_castro/internal/domain/entities"
)

// monthlySubmissionCap is the "3 submissions per month" abuse cap.
const monthlySubmissionCap = 3

// guardCandidate is the slice of a submission the spam guard looks at.
type guardCandidate struct {
	Name        string
	Whatsapp    string
	PackageName string
	IPAddress   string
}

// checkSubmissionGuard is a heuristic spam guard, not a uniqueness constraint.
// False positives and negatives are tolerable; the rules stay simple so an
// admin can reason about why a submission was refused.
//
// Rules, in order:
//  1. Records from the same submitter (ip containment either way, or exact
//     whatsapp) whose check_in falls in the current server-clock month count
//     toward the monthly cap; at the cap, refuse with ErrRateLimited.
//  2. Within that same bucket, a record with the same package and the same
//     name or whatsapp is a resubmission; refuse with ErrDuplicateInquiry.
//
// Bucketing deliberately uses the record's check_in month, not the submission
// time: a December submission for a February event counts against February.
// That mirrors the behavior this service replaced.
func checkSubmissionGuard(records []entities.Inquiry, candidate guardCandidate, now time.Time) error {
	year := now.Format("2006")
	month := now.Format("01")

	var sameMonth []entities.Inquiry
	for _, rec := range records {
		if !sameSubmitter(rec, candidate) {
			continue
		}
		if checkInInMonth(rec.CheckIn, year, month) {
			sameMonth = append(sameMonth, rec)
		}
	}

	if len(sameMonth) >= monthlySubmissionCap {
		return ErrRateLimited
	}

	for _, rec := range sameMonth {
		if rec.PackageName == candidate.PackageName &&
			(rec.Name == candidate.Name || rec.Whatsapp == candidate.Whatsapp) {
			return ErrDuplicateInquiry
		}
	}
	return nil
}

// sameSubmitter ORs two independent predicates: network address containment
// (either direction, to tolerate proxy-chain address lists) and exact
// whatsapp equality. Kept as separate booleans on purpose — no similarity
// scoring.
func sameSubmitter(rec entities.Inquiry, candidate guardCandidate) bool {
	ipMatch := rec.IPAddress != "" && candidate.IPAddress != "" &&
		(strings.Contains(rec.IPAddress, candidate.IPAddress) ||
			strings.Contains(candidate.IPAddress, rec.IPAddress))
	whatsappMatch := rec.Whatsapp != "" && rec.Whatsapp == candidate.Whatsapp
	return ipMatch || whatsappMatch
}

// checkInInMonth compares the first two dash-delimited components of a
// check_in string against zero-padded year/month strings.
func checkInInMonth(checkIn, year, month string) bool {
	parts := strings.SplitN(checkIn, "-", 3)
	if len(parts) < 3 {
		return false
	}
	return parts[0] == year && parts[1] == month
}
