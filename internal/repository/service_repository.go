package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// ServiceRepo provides CRUD operations for bookable listings.
// Amenities and images live in JSON columns and are (un)marshalled
// here so the rest of the application sees plain slices.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = `id, name, type, location, price, status,
	check_in, check_out, description, amenities, images,
	thumbnail_url, rating, admin_id, created_at, updated_at`

// scanService reads one row in serviceColumns order.
func scanService(row interface{ Scan(...any) error }) (model.Service, error) {
	var (
		s         model.Service
		checkIn   sql.NullTime
		checkOut  sql.NullTime
		desc      sql.NullString
		amenities sql.NullString
		images    sql.NullString
		thumb     sql.NullString
		rating    sql.NullFloat64
		adminID   sql.NullInt64
	)
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Location, &s.Price, &s.Status,
		&checkIn, &checkOut, &desc, &amenities, &images,
		&thumb, &rating, &adminID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}
	if checkIn.Valid {
		t := checkIn.Time
		s.CheckIn = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		s.CheckOut = &t
	}
	if desc.Valid {
		d := desc.String
		s.Description = &d
	}
	if amenities.Valid && amenities.String != "" {
		_ = json.Unmarshal([]byte(amenities.String), &s.Amenities)
	}
	if images.Valid && images.String != "" {
		_ = json.Unmarshal([]byte(images.String), &s.Images)
	}
	if thumb.Valid {
		t := thumb.String
		s.ThumbnailURL = &t
	}
	if rating.Valid {
		v := rating.Float64
		s.Rating = &v
	}
	if adminID.Valid {
		id := uint64(adminID.Int64)
		s.AdminID = &id
	}
	return s, nil
}

func marshalList(vals []string) any {
	if len(vals) == 0 {
		return nil
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return nil
	}
	return string(b)
}

// List returns every service, newest first.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	return r.list(ctx, "SELECT "+serviceColumns+" FROM services ORDER BY id DESC")
}

// ListAvailable returns services visible to visitors, newest first.
func (r *ServiceRepo) ListAvailable(ctx context.Context) ([]model.Service, error) {
	return r.list(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE status=? ORDER BY id DESC",
		model.StatusAvailable)
}

func (r *ServiceRepo) list(ctx context.Context, query string, args ...any) ([]model.Service, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches one service. ErrNotFound when it does not exist.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	s, err := scanService(r.db.QueryRowContext(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// Create inserts a service and populates its generated ID.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO services
		 (name, type, location, price, status, check_in, check_out,
		  description, amenities, images, thumbnail_url, rating, admin_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.Name, s.Type, s.Location, s.Price, s.Status, s.CheckIn, s.CheckOut,
		s.Description, marshalList(s.Amenities), marshalList(s.Images),
		s.ThumbnailURL, s.Rating, s.AdminID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update rewrites all mutable columns of a service. ErrNotFound when
// the id does not exist.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET
		 name=?, type=?, location=?, price=?, status=?, check_in=?, check_out=?,
		 description=?, amenities=?, images=?, thumbnail_url=?, rating=?
		 WHERE id=?`,
		s.Name, s.Type, s.Location, s.Price, s.Status, s.CheckIn, s.CheckOut,
		s.Description, marshalList(s.Amenities), marshalList(s.Images),
		s.ThumbnailURL, s.Rating, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// MySQL reports zero rows both for a missing id and for a
		// no-change update; confirm existence before failing.
		var one int
		if qerr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM services WHERE id=? LIMIT 1", s.ID).Scan(&one); qerr == sql.ErrNoRows {
			return ErrNotFound
		} else if qerr != nil {
			return qerr
		}
	}
	return nil
}

// Delete removes a service. ErrNotFound when it does not exist and
// ErrConflict when reservations still reference it.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM services WHERE id=?", id)
	if err != nil {
		if isForeignKey(err) {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MinMaxPrice returns the lowest and highest price across available
// services. ok is false when there are none.
func (r *ServiceRepo) MinMaxPrice(ctx context.Context) (min, max int64, ok bool, err error) {
	var lo, hi sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		"SELECT MIN(price), MAX(price) FROM services WHERE status=?",
		model.StatusAvailable).Scan(&lo, &hi)
	if err != nil {
		return 0, 0, false, err
	}
	if !lo.Valid || !hi.Valid {
		return 0, 0, false, nil
	}
	return lo.Int64, hi.Int64, true, nil
}
