package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID             uuid.UUID
	ExternalID     *string
	ReservableID   uuid.UUID
	ReservableSlug string
	ReservableName string
	OwnerID        *uuid.UUID
	OwnerEmail     *string
	Start          time.Time
	End            time.Time
	Reason         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReservationListRM struct {
	ID             uuid.UUID
	ExternalID     *string
	ReservableSlug string
	Start          time.Time
	End            time.Time
	Reason         *string
}
