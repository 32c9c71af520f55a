package model

const (
	BookingCustomerEmailField = "customerEmail"
	BookingStatusField        = "status"
)

// Booking is stored exactly as the client sent it. Only customerEmail and
// status have meaning to the server.
type Booking map[string]interface{}

func (b Booking) CustomerEmail() string {
	email, _ := b[BookingCustomerEmailField].(string)
	return email
}

func (b Booking) Status() string {
	status, _ := b[BookingStatusField].(string)
	return status
}

// StatusUpdate is the PATCH /bookings/:id body. Other fields are dropped.
type StatusUpdate struct {
	Status string `json:"status"`
}
