package model

import "time"

// Admin represents a privileged account that may manage services,
// customers and reservations.  Authorization is resolved server-side:
// when a user logs in and a row in the `admins` table matches their
// email, their access token carries the ADMIN role claim.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – admin display name.
//  Email     – unique email; the authorization key.
//  Phone     – optional phone number.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Admin struct {
	ID        uint64    // admins.id
	Name      string    // admins.name
	Email     string    // admins.email
	Phone     *string   // admins.phone (nullable)
	CreatedAt time.Time // admins.created_at
	UpdatedAt time.Time // admins.updated_at
}
