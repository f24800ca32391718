package ticket

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrAmenityNotOffered = errors.New("amenity not offered by condominium")
)
