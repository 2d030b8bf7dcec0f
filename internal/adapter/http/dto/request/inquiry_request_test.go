package request

import "testing"

func TestInquiryCreateRequest_ToSubmitInput(t *testing.T) {
	msg := "tem estacionamento?"
	r := InquiryCreateRequest{
		Name:        "Ana",
		State:       "Alagoas",
		EventType:   "casamento",
		CheckIn:     "2025-06-10",
		CheckOut:    "2025-06-11",
		Guests:      "50",
		Whatsapp:    "82999990000",
		Message:     &msg,
		PackageName: "Eventos",
	}

	in := r.ToSubmitInput("203.0.113.7")
	if in.Name != "Ana" || in.State != "Alagoas" || in.EventType != "casamento" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.CheckIn != "2025-06-10" || in.CheckOut != "2025-06-11" || in.Guests != "50" {
		t.Fatalf("unexpected dates/guests: %+v", in)
	}
	if in.Whatsapp != "82999990000" || in.PackageName != "Eventos" {
		t.Fatalf("unexpected contact fields: %+v", in)
	}
	if in.Message == nil || *in.Message != msg {
		t.Fatalf("expected message to pass through: %+v", in)
	}
	if in.IPAddress != "203.0.113.7" {
		t.Fatalf("expected server-resolved ip, got %q", in.IPAddress)
	}
}

func TestInquiryCreateRequest_NilMessage(t *testing.T) {
	r := InquiryCreateRequest{Name: "Ana"}
	in := r.ToSubmitInput("")
	if in.Message != nil {
		t.Fatalf("expected nil message, got %v", *in.Message)
	}
}
