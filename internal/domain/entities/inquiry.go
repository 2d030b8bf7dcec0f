package entities

import "time"

// DateLayout is the calendar-day format used for check-in/check-out.
// Dates are plain day strings; the service never applies time zones to them.
const DateLayout = "2006-01-02"

// Inquiry is a booking-interest submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Domain notes:
//   - Completed=false means pending; Completed=true means the admin confirmed
//     the inquiry and its [CheckIn, CheckOut] range blocks the public calendar.
//   - CheckIn/CheckOut are calendar-day strings (DateLayout); CheckOut is
//     expected on/after CheckIn but this is not enforced at intake.
//   - IPAddress is captured only for the abuse guard, never returned verbatim
//     to public callers.
type Inquiry struct {
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
	IPAddress   string    `json:"ipAddress"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DateRange is a derived [Start, End] calendar-day pair blocked from new
// selection. Boundaries are inclusive; ranges are not merged.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
