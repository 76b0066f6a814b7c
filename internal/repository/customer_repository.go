package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// CustomerRepo provides CRUD operations for guests. The 'customers'
// table carries a UNIQUE index on email, which the booking pipeline
// relies on for its upsert.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerColumns = "id, name, email, phone, address, created_at, updated_at"

func scanCustomer(row interface{ Scan(...any) error }) (model.Customer, error) {
	var (
		c       model.Customer
		phone   sql.NullString
		address sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if phone.Valid {
		p := phone.String
		c.Phone = &p
	}
	if address.Valid {
		a := address.String
		c.Address = &a
	}
	return c, nil
}

// List returns every customer, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches one customer. ErrNotFound when it does not exist.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// GetByEmail fetches one customer by normalized email. ErrNotFound
// when no row matches.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE email=? LIMIT 1", email))
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// Create inserts a customer and populates its generated ID.
// ErrEmailExists on a duplicate email.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO customers (name, email, phone, address) VALUES (?,?,?,?)",
		c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		if isDuplicate(err) {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// upsertTx inserts the customer or, when the email already exists,
// refreshes the contact columns of the existing row. The single
// statement removes the check-then-insert window where two concurrent
// submissions with the same email could race.  LAST_INSERT_ID(id) in
// the update arm makes LastInsertId return the existing row's id.
func upsertCustomerTx(ctx context.Context, tx *sql.Tx, c *model.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	res, err := tx.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone, address)
		 VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   id=LAST_INSERT_ID(id), name=VALUES(name),
		   phone=COALESCE(VALUES(phone), phone),
		   address=COALESCE(VALUES(address), address)`,
		c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// Update rewrites the mutable columns of a customer. ErrNotFound when
// the id does not exist, ErrEmailExists when the new email collides.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	res, err := r.db.ExecContext(ctx,
		"UPDATE customers SET name=?, email=?, phone=?, address=? WHERE id=?",
		c.Name, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrEmailExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var one int
		if qerr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM customers WHERE id=? LIMIT 1", c.ID).Scan(&one); qerr == sql.ErrNoRows {
			return ErrNotFound
		} else if qerr != nil {
			return qerr
		}
	}
	return nil
}

// Delete removes a customer. ErrNotFound when it does not exist and
// ErrConflict when reservations still reference it.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id=?", id)
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
