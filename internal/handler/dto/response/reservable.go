package response

import (
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservableResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
	Kind string    `json:"kind"`
}

func FromReservableRM(rm *readmodel.ReservableRM) *ReservableResponse {
	var resp ReservableResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservableRMs(rms []*readmodel.ReservableRM) []*ReservableResponse {
	result := make([]*ReservableResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromReservableRM(rm)
	}
	return result
}
