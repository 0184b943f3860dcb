// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the application-level profile behind an authenticated identity.
// It carries display data and UI preferences; credentials live on AuthInfo.
type User struct {
	ID          uuid.UUID     // The unique identifier for the user.
	Name        string        // The user's display/login name.
	DarkMode    bool          // Whether the user prefers the dark UI theme.
	Permissions []*Permission // The set of named capabilities granted to this user.
	CreatedAt   time.Time     // Timestamp of when this user was created.
	UpdatedAt   time.Time     // Timestamp of the last modification to this user.
}

// HasPermission reports whether the user holds a permission with the given name.
// Matching is by exact name string.
func (u *User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p != nil && p.Name == name {
			return true
		}
	}

	return false
}
