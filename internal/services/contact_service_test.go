package services

import (
	"errors"
	"testing"

	"photostudio_backend/internal/email"
	"photostudio_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailProvider struct {
	sent     []*email.Email
	template string
	data     email.TemplateData
	fail     bool
}

func (f *fakeEmailProvider) Send(msg *email.Email) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.template = templateName
	f.data = data
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeEmailProvider) Validate() error { return nil }

func TestSendContact_NotifiesStudio(t *testing.T) {
	provider := &fakeEmailProvider{}
	svc := NewContactService(provider, "studio@example.com")

	message := svc.SendContact(&dto.ContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Do you shoot weddings?",
	})

	assert.Equal(t, ContactSuccessMessage, message)
	require.Len(t, provider.sent, 1)
	assert.Equal(t, []string{"studio@example.com"}, provider.sent[0].To)
	assert.Equal(t, email.TemplateContactNotification, provider.template)
	assert.Equal(t, "Ana", provider.data["Name"])
}

func TestSendContact_DeliveryFailureStillSucceeds(t *testing.T) {
	provider := &fakeEmailProvider{fail: true}
	svc := NewContactService(provider, "studio@example.com")

	message := svc.SendContact(&dto.ContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hello",
	})

	assert.Equal(t, ContactSuccessMessage, message)
	assert.Empty(t, provider.sent)
}

func TestSendBooking(t *testing.T) {
	provider := &fakeEmailProvider{}
	svc := NewContactService(provider, "studio@example.com")

	guests := 120
	message := svc.SendBooking(&dto.BookingRequest{
		Name:      "Marko",
		Email:     "marko@example.com",
		Phone:     "+385911234567",
		EventType: "wedding",
		EventDate: "2027-06-12",
		Location:  "Zagreb",
		Guests:    &guests,
	})

	assert.Equal(t, BookingSuccessMessage, message)
	require.Len(t, provider.sent, 1)
	assert.Equal(t, email.TemplateBookingNotification, provider.template)
	assert.Equal(t, 120, provider.data["Guests"])
	assert.Contains(t, provider.sent[0].Subject, "Marko")
}

func TestSendBooking_FailureStillSucceeds(t *testing.T) {
	provider := &fakeEmailProvider{fail: true}
	svc := NewContactService(provider, "studio@example.com")

	message := svc.SendBooking(&dto.BookingRequest{
		Name:      "Marko",
		Email:     "marko@example.com",
		Phone:     "+385911234567",
		EventType: "concert",
		EventDate: "2027-06-12",
		Location:  "Split",
	})

	assert.Equal(t, BookingSuccessMessage, message)
}
