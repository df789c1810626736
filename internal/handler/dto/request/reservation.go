package request

import (
	"strings"
	"time"
)

type CreateReservationRequest struct {
	ReservableSlug string    `json:"reservable_slug" binding:"required"`
	OwnerEmail     *string   `json:"owner_email,omitempty"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required"`
	Reason         string    `json:"reason,omitempty"`
}

func (r CreateReservationRequest) GetOwnerEmail() *string {
	if r.OwnerEmail == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.OwnerEmail)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ListReservationsRequest struct {
	ReservableSlug string     `form:"reservable"`
	From           *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To             *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
