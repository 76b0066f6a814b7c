package model

import "time"

// Service represents a bookable unit: a resort, a hotel room class,
// a cabin, a conference hall and so on.  It corresponds to a row in
// the `services` table.  Amenities and Images are stored as JSON
// arrays in the database and unmarshalled by the repository.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name of the listing.
//  Type         – category (Resort, Hotel, Cabin, Villa, ...).
//  Location     – named location (Beach Front, Mountain View, ...).
//  Price        – nightly price in whole currency units.
//  Status       – availability status (available, booked, maintenance).
//  CheckIn      – reference check-in date shown on the listing.
//  CheckOut     – reference check-out date shown on the listing.
//  Description  – optional free-text description.
//  Amenities    – optional amenity labels.
//  Images       – optional image URLs hosted on the image CDN.
//  ThumbnailURL – optional thumbnail image URL.
//  Rating       – optional rating out of five.
//  AdminID      – admin who manages the listing, if any.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Service struct {
	ID           uint64     // services.id
	Name         string     // services.name
	Type         string     // services.type
	Location     string     // services.location
	Price        int64      // services.price
	Status       string     // services.status
	CheckIn      *time.Time // services.check_in (nullable)
	CheckOut     *time.Time // services.check_out (nullable)
	Description  *string    // services.description (nullable)
	Amenities    []string   // services.amenities (JSON array)
	Images       []string   // services.images (JSON array)
	ThumbnailURL *string    // services.thumbnail_url (nullable)
	Rating       *float64   // services.rating (nullable)
	AdminID      *uint64    // services.admin_id (nullable)
	CreatedAt    time.Time  // services.created_at
	UpdatedAt    time.Time  // services.updated_at
}

// Service status values.  Only listings with StatusAvailable are
// shown to visitors and accepted for new bookings.
const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
)
