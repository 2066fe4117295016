// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user both authenticates against
// the API and acts as the owner/seller of the products they create.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier, unique across the system.
	PasswordHash string    // Stores the bcrypt-hashed password credential.
	FirstName    string
	LastName     string
	IsActive     bool      // Deactivated accounts keep their row but cannot log in.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// DisplayName returns the "First Last" form used in product projections.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
