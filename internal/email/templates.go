package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager implements TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager creates a template manager with the built-in
// notification templates registered.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	if err := tm.AddTemplate(TemplateContactNotification, contactNotificationHTML); err != nil {
		return nil, err
	}
	if err := tm.AddTemplate(TemplateBookingNotification, bookingNotificationHTML); err != nil {
		return nil, err
	}

	return tm, nil
}

// Render renders a template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate registers a template by name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// Built-in notification template names.
const (
	TemplateContactNotification = "contact-notification"
	TemplateBookingNotification = "booking-notification"
)

const contactNotificationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Contact Message</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #dc2626; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1>New Contact Message</h1>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px;">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
        <div style="background-color: white; padding: 15px; border-radius: 4px;">
            <p>{{.Message}}</p>
        </div>
    </div>
</body>
</html>`

const bookingNotificationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Booking Request</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #dc2626; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1>New Booking Request</h1>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px;">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <div style="background-color: white; padding: 15px; border-radius: 4px;">
            <p><strong>Event type:</strong> {{.EventType}}</p>
            <p><strong>Event date:</strong> {{.EventDate}}</p>
            <p><strong>Location:</strong> {{.Location}}</p>
            {{if .Guests}}<p><strong>Guests:</strong> {{.Guests}}</p>{{end}}
            {{if .Budget}}<p><strong>Budget:</strong> {{.Budget}}</p>{{end}}
            {{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
        </div>
    </div>
</body>
</html>`
