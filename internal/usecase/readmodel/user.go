package readmodel

import "github.com/google/uuid"

type UserRM struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	IsActive    bool
}
