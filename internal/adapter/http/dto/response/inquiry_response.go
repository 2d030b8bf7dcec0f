package response

import (
	"time"

	"espaco_castro/internal/domain/entities"
)

type InquiryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	EventType   string    `json:"eventType"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	Guests      string    `json:"guests"`
	Whatsapp    string    `json:"whatsapp"`
	Message     *string   `json:"message"`
	PackageName string    `json:"packageName"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:          i.ID,
		Name:        i.Name,
		State:       i.State,
		EventType:   i.EventType,
		CheckIn:     i.CheckIn,
		CheckOut:    i.CheckOut,
		Guests:      i.Guests,
		Whatsapp:    i.Whatsapp,
		Message:     i.Message,
		PackageName: i.PackageName,
		Completed:   i.Completed,
		CreatedAt:   i.CreatedAt,
	}
}

func FromInquiries(list []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInquiry(i))
	}
	return out
}
