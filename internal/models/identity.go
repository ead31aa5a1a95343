package models

import "github.com/google/uuid"

// Role of an authenticated caller.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the resolved caller. A nil *Identity means anonymous; it is
// threaded explicitly through service operations rather than read from
// ambient state.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

func (i *Identity) Is(userID uuid.UUID) bool {
	return i != nil && i.ID == userID
}
