package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot    = errors.New("start time must be before end time")
	ErrMissingReservable  = errors.New("reservation requires a reservable")
	ErrMissingExternalID  = errors.New("imported reservation requires an external ID")
)

// Reservation books a reservable for a time slot. Rows sourced from the WTT3
// timetable carry an external ID; locally created rows do not.
type Reservation struct {
	id           uuid.UUID
	externalID   *string
	reservableID uuid.UUID
	ownerID      *uuid.UUID
	slot         TimeSlot
	reason       string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReservation(reservableID uuid.UUID, ownerID *uuid.UUID, slot TimeSlot, reason string) (*Reservation, error) {
	if reservableID == uuid.Nil {
		return nil, ErrMissingReservable
	}

	return &Reservation{
		id:           uuid.New(),
		reservableID: reservableID,
		ownerID:      ownerID,
		slot:         slot,
		reason:       reason,
	}, nil
}

// NewImportedReservation builds a reservation keyed by the identifier of the
// external timetabling system. The external ID is what makes re-imports
// idempotent, so it must not be empty.
func NewImportedReservation(externalID string, reservableID uuid.UUID, ownerID *uuid.UUID, slot TimeSlot, reason string) (*Reservation, error) {
	if externalID == "" {
		return nil, ErrMissingExternalID
	}

	res, err := NewReservation(reservableID, ownerID, slot, reason)
	if err != nil {
		return nil, err
	}
	res.externalID = &externalID
	return res, nil
}

func ReconstructReservation(
	id uuid.UUID,
	externalID *string,
	reservableID uuid.UUID,
	ownerID *uuid.UUID,
	slot TimeSlot,
	reason string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		externalID:   externalID,
		reservableID: reservableID,
		ownerID:      ownerID,
		slot:         slot,
		reason:       reason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) IsImported() bool {
	return r.externalID != nil
}

func (r *Reservation) Overlaps(other *Reservation) bool {
	return r.reservableID == other.reservableID && r.slot.Overlaps(other.slot)
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) ExternalID() *string     { return r.externalID }
func (r *Reservation) ReservableID() uuid.UUID { return r.reservableID }
func (r *Reservation) OwnerID() *uuid.UUID     { return r.ownerID }
func (r *Reservation) Slot() TimeSlot          { return r.slot }
func (r *Reservation) Reason() string          { return r.reason }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
