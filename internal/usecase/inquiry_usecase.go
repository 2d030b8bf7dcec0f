package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode"

	"espaco_castro/internal/domain/entities"
	"espaco_castro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInquiryData = errors.New("invalid inquiry data")
	ErrInvalidInquiryID   = errors.New("invalid inquiry id")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrRateLimited        = errors.New("monthly submission limit reached")
	ErrDuplicateInquiry   = errors.New("duplicate inquiry for this package")
	ErrDatesUnavailable   = errors.New("requested dates are already booked")
)

// SubmitInquiryInput is the validated-at-the-edge shape of a public
// submission. IPAddress is resolved by the HTTP adapter, not the visitor.
type SubmitInquiryInput struct {
	Name        string
	State       string
	EventType   string
	CheckIn     string
	CheckOut    string
	Guests      string
	Whatsapp    string
	Message     *string
	PackageName string
	IPAddress   string
}

// IInquiryUseCase exposes inquiry intake plus the admin operations.
//
// Submit runs the whole intake pipeline: field validation, whatsapp
// normalization, blocked-date check against confirmed inquiries, the
// duplicate/rate-limit guard, then persistence.

type IInquiryUseCase interface {
	Submit(ctx context.Context, input SubmitInquiryInput) (entities.Inquiry, error)
	List(ctx context.Context) ([]entities.Inquiry, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, completed bool) (entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo interfaces.IInquiryRepository
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo}
}

func (u *InquiryUseCase) Submit(ctx context.Context, input SubmitInquiryInput) (entities.Inquiry, error) {
	input = normalizeSubmitInput(input)
	if err := validateSubmitInput(input); err != nil {
		return entities.Inquiry{}, err
	}

	// The guard and the blocked-date check both need the full record list.
	// This read-then-write is not transactional; near-simultaneous submissions
	// from the same visitor can both land. Accepted for this traffic profile.
	records, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[inquiry][usecase] listing records failed err=%v", err)
		return entities.Inquiry{}, err
	}

	for _, rec := range records {
		if rec.Completed && rangesOverlap(input.CheckIn, input.CheckOut, rec.CheckIn, rec.CheckOut) {
			log.Printf("[inquiry][usecase] dates blocked check_in=%s check_out=%s by=%s", input.CheckIn, input.CheckOut, rec.ID)
			return entities.Inquiry{}, ErrDatesUnavailable
		}
	}

	candidate := guardCandidate{
		Name:        input.Name,
		Whatsapp:    input.Whatsapp,
		PackageName: input.PackageName,
		IPAddress:   input.IPAddress,
	}
	if err := checkSubmissionGuard(records, candidate, time.Now()); err != nil {
		log.Printf("[inquiry][usecase] guard refused submission whatsapp=%s package=%s err=%v", input.Whatsapp, input.PackageName, err)
		return entities.Inquiry{}, err
	}

	inquiry := entities.Inquiry{
		ID:          uuid.NewString(),
		Name:        input.Name,
		State:       input.State,
		EventType:   input.EventType,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		Guests:      input.Guests,
		Whatsapp:    input.Whatsapp,
		Message:     input.Message,
		PackageName: input.PackageName,
		IPAddress:   input.IPAddress,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, inquiry)
	if err != nil {
		log.Printf("[inquiry][usecase] create failed id=%s err=%v", inquiry.ID, err)
		return entities.Inquiry{}, err
	}
	log.Printf("[inquiry][usecase] inquiry created id=%s package=%s check_in=%s", created.ID, created.PackageName, created.CheckIn)
	return created, nil
}

func (u *InquiryUseCase) List(ctx context.Context) ([]entities.Inquiry, error) {
	return u.repo.List(ctx)
}

func (u *InquiryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInquiryID
	}
	return u.repo.Delete(ctx, id)
}

func (u *InquiryUseCase) UpdateStatus(ctx context.Context, id string, completed bool) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, completed)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if updated.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return updated, nil
}

func normalizeSubmitInput(in SubmitInquiryInput) SubmitInquiryInput {
	in.Name = strings.TrimSpace(in.Name)
	in.State = strings.TrimSpace(in.State)
	in.EventType = strings.TrimSpace(in.EventType)
	in.CheckIn = strings.TrimSpace(in.CheckIn)
	in.CheckOut = strings.TrimSpace(in.CheckOut)
	in.Guests = strings.TrimSpace(in.Guests)
	in.Whatsapp = digitsOnly(in.Whatsapp)
	in.PackageName = strings.TrimSpace(in.PackageName)
	in.IPAddress = strings.TrimSpace(in.IPAddress)
	return in
}

func validateSubmitInput(in SubmitInquiryInput) error {
	required := []string{
		in.Name, in.State, in.EventType, in.CheckIn, in.CheckOut,
		in.Guests, in.Whatsapp, in.PackageName,
	}
	for _, v := range required {
		if v == "" {
			return ErrInvalidInquiryData
		}
	}
	if _, ok := parseDay(in.CheckIn); !ok {
		return ErrInvalidInquiryData
	}
	if _, ok := parseDay(in.CheckOut); !ok {
		return ErrInvalidInquiryData
	}
	return nil
}

// digitsOnly strips everything but decimal digits: "+55 (82) 9 9338-5163"
// and "82993385163" normalize to comparable values for the guard.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
