package dto

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,max=1000"`
}

// BookingRequest is the public booking form payload.
type BookingRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=20"`
	EventType string `json:"event_type" validate:"required,oneof=wedding baptism concert on-set studio modelling travel video other"`
	EventDate string `json:"event_date" validate:"required,future-date"`
	Location  string `json:"location" validate:"required,max=255"`
	Guests    *int   `json:"guests" validate:"omitempty,min=1"`
	Budget    string `json:"budget" validate:"omitempty,max=100"`
	Message   string `json:"message" validate:"omitempty,max=1000"`
}
