package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// ReservationRepo provides CRUD operations for reservations together
// with the atomic booking write used by the submission pipeline.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateBooking upserts the customer on its email and inserts the
// reservation in a single transaction, populating the generated IDs
// on both records. Either both rows are committed or neither is; the
// payment record is deliberately not part of this transaction.
func (r *ReservationRepo) CreateBooking(ctx context.Context, cust *model.Customer, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertCustomerTx(ctx, tx, cust); err != nil {
		return err
	}
	res.CustomerID = cust.ID

	result, err := tx.ExecContext(ctx,
		`INSERT INTO reservations
		 (s_id, c_id, check_in_date, check_out_date, guest_count,
		  special_requests, price, payment_status, service_type)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		res.ServiceID, res.CustomerID,
		res.CheckInDate.Format("2006-01-02"), res.CheckOutDate.Format("2006-01-02"),
		res.GuestCount, res.SpecialRequests, res.Price, res.PaymentStatus, res.ServiceType)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)

	return tx.Commit()
}

// ReservationDetail is a reservation joined with its service and
// customer for display in the dashboard and the customer's booking
// list.
type ReservationDetail struct {
	ID              uint64  `json:"id"`
	ServiceID       uint64  `json:"service_id"`
	CustomerID      uint64  `json:"customer_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	GuestCount      int     `json:"guest_count"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Price           int64   `json:"price"`
	PaymentStatus   string  `json:"payment_status"`
	ServiceType     string  `json:"service_type"`
	ServiceName     string  `json:"service_name"`
	ServiceLocation string  `json:"service_location"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CreatedAt       string  `json:"created_at"`
}

const reservationDetailQuery = `SELECT r.id, r.s_id, r.c_id,
		DATE_FORMAT(r.check_in_date, '%Y-%m-%d'),
		DATE_FORMAT(r.check_out_date, '%Y-%m-%d'),
		r.guest_count, r.special_requests, r.price, r.payment_status, r.service_type,
		s.name, s.location, c.name, c.email,
		DATE_FORMAT(r.created_at, '%Y-%m-%d %T')
	FROM reservations r
	JOIN services s ON s.id = r.s_id
	JOIN customers c ON c.id = r.c_id`

func scanReservationDetail(row interface{ Scan(...any) error }) (ReservationDetail, error) {
	var (
		d        ReservationDetail
		requests sql.NullString
	)
	err := row.Scan(&d.ID, &d.ServiceID, &d.CustomerID,
		&d.CheckInDate, &d.CheckOutDate,
		&d.GuestCount, &requests, &d.Price, &d.PaymentStatus, &d.ServiceType,
		&d.ServiceName, &d.ServiceLocation, &d.CustomerName, &d.CustomerEmail,
		&d.CreatedAt)
	if err != nil {
		return d, err
	}
	if requests.Valid {
		s := requests.String
		d.SpecialRequests = &s
	}
	return d, nil
}

// List returns every reservation with joined details, newest first.
func (r *ReservationRepo) List(ctx context.Context) ([]ReservationDetail, error) {
	return r.listDetails(ctx, reservationDetailQuery+" ORDER BY r.id DESC")
}

// ListByCustomerEmail returns the reservations belonging to the
// customer with the given email, newest first. An unknown email
// yields an empty slice, not an error.
func (r *ReservationRepo) ListByCustomerEmail(ctx context.Context, email string) ([]ReservationDetail, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.listDetails(ctx,
		reservationDetailQuery+" WHERE c.email = ? ORDER BY r.id DESC", email)
}

func (r *ReservationRepo) listDetails(ctx context.Context, query string, args ...any) ([]ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ReservationDetail, 0)
	for rows.Next() {
		d, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID fetches one reservation with joined details. ErrNotFound
// when it does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (ReservationDetail, error) {
	d, err := scanReservationDetail(r.db.QueryRowContext(ctx,
		reservationDetailQuery+" WHERE r.id = ? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return d, ErrNotFound
	}
	return d, err
}

// ReservationUpdate carries the admin-editable reservation columns.
// Nil fields are left untouched.
type ReservationUpdate struct {
	CheckInDate   *string
	CheckOutDate  *string
	GuestCount    *int
	Price         *int64
	PaymentStatus *string
}

// Update applies the non-nil fields of u to a reservation.
// ErrNotFound when the id does not exist.
func (r *ReservationRepo) Update(ctx context.Context, id uint64, u ReservationUpdate) error {
	set := []string{}
	args := []any{}
	if u.CheckInDate != nil {
		set = append(set, "check_in_date=?")
		args = append(args, *u.CheckInDate)
	}
	if u.CheckOutDate != nil {
		set = append(set, "check_out_date=?")
		args = append(args, *u.CheckOutDate)
	}
	if u.GuestCount != nil {
		set = append(set, "guest_count=?")
		args = append(args, *u.GuestCount)
	}
	if u.Price != nil {
		set = append(set, "price=?")
		args = append(args, *u.Price)
	}
	if u.PaymentStatus != nil {
		set = append(set, "payment_status=?")
		args = append(args, *u.PaymentStatus)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET "+strings.Join(set, ", ")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var one int
		if qerr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM reservations WHERE id=? LIMIT 1", id).Scan(&one); qerr == sql.ErrNoRows {
			return ErrNotFound
		} else if qerr != nil {
			return qerr
		}
	}
	return nil
}

// Delete removes a reservation and its payment records. ErrNotFound
// when it does not exist.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM payments WHERE reservation_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// Count returns the number of reservations.
func (r *ReservationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reservations").Scan(&n)
	return n, err
}

// Revenue returns the summed price of paid reservations.
func (r *ReservationRepo) Revenue(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT SUM(price) FROM reservations WHERE payment_status=?",
		model.PaymentPaid).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}
