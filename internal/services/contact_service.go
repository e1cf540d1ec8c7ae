package services

import (
	"photostudio_backend/internal/email"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/services/dto"
)

// User-facing confirmations. Returned even when the notification email could
// not be sent: form submissions always succeed from the visitor's side.
const (
	ContactSuccessMessage = "Thank you for your message! We will get back to you soon."
	BookingSuccessMessage = "Thank you for your booking request! We will contact you soon to discuss the details."
)

type ContactService interface {
	// SendContact delivers a contact notification to the studio mailbox.
	// The returned message is always the success confirmation.
	SendContact(req *dto.ContactRequest) string

	// SendBooking delivers a booking notification to the studio mailbox.
	SendBooking(req *dto.BookingRequest) string
}

type contactService struct {
	provider      email.Provider
	notifyAddress string
}

func NewContactService(provider email.Provider, notifyAddress string) ContactService {
	return &contactService{
		provider:      provider,
		notifyAddress: notifyAddress,
	}
}

func (s *contactService) SendContact(req *dto.ContactRequest) string {
	data := email.TemplateData{
		"Name":    req.Name,
		"Email":   req.Email,
		"Phone":   req.Phone,
		"Message": req.Message,
	}

	err := s.provider.SendWithTemplate(email.TemplateContactNotification, data, &email.Email{
		To:      []string{s.notifyAddress},
		Subject: "New Contact Message from " + req.Name,
	})
	if err != nil {
		// Swallowed: the visitor still sees success
		logger.Error("failed to send contact email", "error", err.Error())
	}

	return ContactSuccessMessage
}

func (s *contactService) SendBooking(req *dto.BookingRequest) string {
	data := email.TemplateData{
		"Name":      req.Name,
		"Email":     req.Email,
		"Phone":     req.Phone,
		"EventType": req.EventType,
		"EventDate": req.EventDate,
		"Location":  req.Location,
		"Budget":    req.Budget,
		"Message":   req.Message,
	}
	if req.Guests != nil {
		data["Guests"] = *req.Guests
	}

	err := s.provider.SendWithTemplate(email.TemplateBookingNotification, data, &email.Email{
		To:      []string{s.notifyAddress},
		Subject: "New Booking Request from " + req.Name,
	})
	if err != nil {
		logger.Error("failed to send booking email", "error", err.Error())
	}

	return BookingSuccessMessage
}
