package domain

import "time"

type UserID int64

// UserIdentity is the server-assigned profile for an authenticated user.
// The client never mutates it; it is replaced wholesale on login.
type UserIdentity struct {
	ID        UserID
	Email     string
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsActive  bool
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
