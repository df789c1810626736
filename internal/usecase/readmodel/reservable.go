package readmodel

import "github.com/google/uuid"

type ReservableRM struct {
	ID   uuid.UUID
	Slug string
	Name string
	Kind string
}
