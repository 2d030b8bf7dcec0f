package request

import "espaco_castro/internal/usecase"

// InquiryCreateRequest is the public booking-form payload. Field names match
// the site's form exactly; everything but message is required and non-empty
// (binding:"required" rejects missing and empty strings, the use case rejects
// whitespace-only values and malformed dates).
type InquiryCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	State       string  `json:"state" binding:"required"`
	EventType   string  `json:"eventType" binding:"required"`
	CheckIn     string  `json:"checkIn" binding:"required"`
	CheckOut    string  `json:"checkOut" binding:"required"`
	Guests      string  `json:"guests" binding:"required"`
	Whatsapp    string  `json:"whatsapp" binding:"required"`
	Message     *string `json:"message"`
	PackageName string  `json:"packageName" binding:"required"`
}

// ToSubmitInput attaches the server-resolved client address; visitors cannot
// set their own ip for the guard.
func (r InquiryCreateRequest) ToSubmitInput(ipAddress string) usecase.SubmitInquiryInput {
	return usecase.SubmitInquiryInput{
		Name:        r.Name,
		State:       r.State,
		EventType:   r.EventType,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Guests:      r.Guests,
		Whatsapp:    r.Whatsapp,
		Message:     r.Message,
		PackageName: r.PackageName,
		IPAddress:   ipAddress,
	}
}

// InquiryStatusUpdateRequest flips the completed flag. Pointer so that an
// explicit `false` still binds.
type InquiryStatusUpdateRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
