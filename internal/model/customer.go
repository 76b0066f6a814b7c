package model

import "time"

// Customer represents a guest who placed at least one booking or was
// entered by an admin.  Email is the natural deduplication key: the
// `customers` table carries a UNIQUE index on it and the submission
// pipeline upserts on that column.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – full name of the guest.
//  Email     – unique, lower-cased email address.
//  Phone     – optional phone number.
//  Address   – optional postal address.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Customer struct {
	ID        uint64    // customers.id
	Name      string    // customers.name
	Email     string    // customers.email
	Phone     *string   // customers.phone (nullable)
	Address   *string   // customers.address (nullable)
	CreatedAt time.Time // customers.created_at
	UpdatedAt time.Time // customers.updated_at
}
