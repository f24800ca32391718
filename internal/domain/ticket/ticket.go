// Package ticket models resident requests: maintenance issues and amenity
// reservations, with a status workflow and an interaction log.
package ticket

import (
	"fmt"
	"time"
)

// Type classifies the request.
type Type string

const (
	TypeMaintenance        Type = "maintenance"
	TypeAmenityReservation Type = "amenity_reservation"
)

func (t Type) IsValid() bool {
	return t == TypeMaintenance || t == TypeAmenityReservation
}

// Status is the workflow state of a ticket.
type Status string

const (
	StatusOpen      Status = "open"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// validTransitions lists the allowed status moves. Rejected and completed
// are terminal.
var validTransitions = map[Status][]Status{
	StatusOpen:     {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted, StatusRejected},
}

// Interaction is one entry in the ticket's conversation log.
type Interaction struct {
	AuthorID  uint      `json:"author_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is a resident request tied to a condominium.
type Ticket struct {
	id            uint
	condominiumID uint
	createdBy     uint
	ticketType    Type
	subject       string
	description   string
	status        Status
	amenity       string
	reservedFor   *time.Time
	interactions  []Interaction
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTicket opens a request. Amenity reservations require the amenity name
// and the reservation time.
func NewTicket(condominiumID, createdBy uint, ticketType Type, subject, description string) (*Ticket, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator user ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if subject == "" {
		return nil, fmt.Errorf("ticket subject is required")
	}

	now := time.Now()
	return &Ticket{
		condominiumID: condominiumID,
		createdBy:     createdBy,
		ticketType:    ticketType,
		subject:       subject,
		description:   description,
		status:        StatusOpen,
		interactions:  []Interaction{},
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewAmenityReservation opens an amenity reservation ticket.
func NewAmenityReservation(condominiumID, createdBy uint, subject, description, amenity string, reservedFor time.Time) (*Ticket, error) {
	t, err := NewTicket(condominiumID, createdBy, TypeAmenityReservation, subject, description)
	if err != nil {
		return nil, err
	}
	if amenity == "" {
		return nil, fmt.Errorf("amenity name is required")
	}
	if reservedFor.Before(time.Now()) {
		return nil, fmt.Errorf("reservation time must be in the future")
	}
	t.amenity = amenity
	t.reservedFor = &reservedFor
	return t, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	condominiumID, createdBy uint,
	ticketType Type,
	subject, description string,
	status Status,
	amenity string,
	reservedFor *time.Time,
	interactions []Interaction,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	if interactions == nil {
		interactions = []Interaction{}
	}

	return &Ticket{
		id:            id,
		condominiumID: condominiumID,
		createdBy:     createdBy,
		ticketType:    ticketType,
		subject:       subject,
		description:   description,
		status:        status,
		amenity:       amenity,
		reservedFor:   reservedFor,
		interactions:  interactions,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) CondominiumID() uint {
	return t.condominiumID
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) Type() Type {
	return t.ticketType
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) Amenity() string {
	return t.amenity
}

func (t *Ticket) ReservedFor() *time.Time {
	return t.reservedFor
}

func (t *Ticket) Interactions() []Interaction {
	return t.interactions
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// TransitionTo moves the ticket to a new status if the workflow allows it.
func (t *Ticket) TransitionTo(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", next)
	}
	for _, allowed := range validTransitions[t.status] {
		if allowed == next {
			t.status = next
			t.touch()
			return nil
		}
	}
	return fmt.Errorf("cannot transition ticket from %s to %s", t.status, next)
}

// Approve accepts an open request.
func (t *Ticket) Approve() error {
	return t.TransitionTo(StatusApproved)
}

// Reject declines an open or approved request.
func (t *Ticket) Reject() error {
	return t.TransitionTo(StatusRejected)
}

// Complete closes out an approved request.
func (t *Ticket) Complete() error {
	return t.TransitionTo(StatusCompleted)
}

// AddInteraction appends a comment to the conversation log.
func (t *Ticket) AddInteraction(authorID uint, message string) error {
	if authorID == 0 {
		return fmt.Errorf("author ID is required")
	}
	if message == "" {
		return fmt.Errorf("interaction message is required")
	}
	t.interactions = append(t.interactions, Interaction{
		AuthorID:  authorID,
		Message:   message,
		CreatedAt: time.Now(),
	})
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}
