package email

// Provider is the outgoing mail interface.
type Provider interface {
	// Send sends a plain email message
	Send(email *Email) error

	// SendWithTemplate renders templateName and sends the result as HTML body
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration
	Validate() error
}

// TemplateRenderer renders named email templates.
type TemplateRenderer interface {
	// Render renders a template with data
	Render(templateName string, data TemplateData) (string, error)

	// AddTemplate registers a template by name
	AddTemplate(name string, template string) error
}
