package repository

import (
	"context"
	"database/sql"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// PaymentRepo writes and reads the best-effort payment log. Callers
// in the booking pipeline swallow Create errors; the admin dashboard
// reads the rows back per reservation.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create inserts a payment record and populates its generated ID.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (reservation_id, method, amount, account_no, transaction_ref)
		 VALUES (?,?,?,?,?)`,
		p.ReservationID, p.Method, p.Amount, p.AccountNo, p.TransactionRef)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// ListByReservation returns the payment records of one reservation,
// oldest first.
func (r *PaymentRepo) ListByReservation(ctx context.Context, reservationID uint64) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, reservation_id, method, amount, account_no, transaction_ref, created_at
		 FROM payments WHERE reservation_id=? ORDER BY id ASC`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Payment, 0)
	for rows.Next() {
		var (
			p       model.Payment
			account sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.Method, &p.Amount,
			&account, &p.TransactionRef, &p.CreatedAt); err != nil {
			return nil, err
		}
		if account.Valid {
			a := account.String
			p.AccountNo = &a
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
