//go:build unit || e2e

package builder

import (
	"time"

	reqdto "roomsync/internal/handler/dto/request"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ExternalID     *string
	ReservableID   uuid.UUID
	ReservableSlug string
	ReservableName string
	OwnerID        *uuid.UUID
	OwnerEmail     *string
	Start          time.Time
	End            time.Time
	Reason         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ReservationBuilder{
		ReservableID:   uuid.New(),
		ReservableSlug: "room-101",
		ReservableName: "Room 101",
		Start:          now.Add(24 * time.Hour),
		End:            now.Add(26 * time.Hour),
		Reason:         "Algorithms lecture",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *ReservationBuilder) WithSlug(slug string) *ReservationBuilder {
	b.ReservableSlug = slug
	return b
}

func (b *ReservationBuilder) WithExternalID(id string) *ReservationBuilder {
	b.ExternalID = &id
	return b
}

func (b *ReservationBuilder) WithOwner(id uuid.UUID, email string) *ReservationBuilder {
	b.OwnerID = &id
	b.OwnerEmail = &email
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ReservableSlug: b.ReservableSlug,
		OwnerEmail:     b.OwnerEmail,
		Start:          b.Start,
		End:            b.End,
		Reason:         b.Reason,
	}
}

func (b *ReservationBuilder) BuildRM() *readmodel.ReservationRM {
	var reason *string
	if b.Reason != "" {
		reason = &b.Reason
	}
	return &readmodel.ReservationRM{
		ID:             uuid.New(),
		ExternalID:     b.ExternalID,
		ReservableID:   b.ReservableID,
		ReservableSlug: b.ReservableSlug,
		ReservableName: b.ReservableName,
		OwnerID:        b.OwnerID,
		OwnerEmail:     b.OwnerEmail,
		Start:          b.Start,
		End:            b.End,
		Reason:         reason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListRM() *readmodel.ReservationListRM {
	var reason *string
	if b.Reason != "" {
		reason = &b.Reason
	}
	return &readmodel.ReservationListRM{
		ID:             uuid.New(),
		ExternalID:     b.ExternalID,
		ReservableSlug: b.ReservableSlug,
		Start:          b.Start,
		End:            b.End,
		Reason:         reason,
	}
}

func (b *ReservationBuilder) BuildWTT3Record() wtt3.Record {
	externalID := ""
	if b.ExternalID != nil {
		externalID = *b.ExternalID
	}
	ownerEmail := ""
	if b.OwnerEmail != nil {
		ownerEmail = *b.OwnerEmail
	}
	return wtt3.Record{
		ID:             externalID,
		ReservableSlug: b.ReservableSlug,
		OwnerEmail:     ownerEmail,
		Start:          b.Start.Format(time.RFC3339),
		End:            b.End.Format(time.RFC3339),
		Reason:         b.Reason,
	}
}
