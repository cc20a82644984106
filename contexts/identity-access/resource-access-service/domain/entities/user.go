package entities

import (
	"strings"
	"time"
)

// User is the authenticated principal as seen by the access workflow.
// It is produced by the identity store and read-only here.
type User struct {
	ID         string
	Username   string
	Email      string
	FirstName  string
	LastName   string
	IsActive   bool
	IsStaff    bool
	DateJoined *time.Time
	LastLogin  *time.Time
}

// UserSummary is the public projection embedded in access decisions.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// FullName formats the display name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CanAccessProtectedResources is the principal-level access predicate.
// An inactive account never passes, regardless of resource state.
func (u User) CanAccessProtectedResources() bool {
	return u.IsActive
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName(),
	}
}
