package response

import (
	"time"

	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	ExternalID     *string    `json:"external_id,omitempty"`
	ReservableID   uuid.UUID  `json:"reservable_id"`
	ReservableSlug string     `json:"reservable_slug"`
	ReservableName string     `json:"reservable_name"`
	OwnerID        *uuid.UUID `json:"owner_id,omitempty"`
	OwnerEmail     *string    `json:"owner_email,omitempty"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Reason         *string    `json:"reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	ExternalID     *string   `json:"external_id,omitempty"`
	ReservableSlug string    `json:"reservable_slug"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Reason         *string   `json:"reason,omitempty"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListRMs(rms []*readmodel.ReservationListRM) []*ReservationListResponse {
	result := make([]*ReservationListResponse, len(rms))
	for i, rm := range rms {
		var resp ReservationListResponse
		_ = copier.Copy(&resp, rm)
		result[i] = &resp
	}
	return result
}
