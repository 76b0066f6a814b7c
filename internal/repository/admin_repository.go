package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// AdminRepo provides CRUD operations for privileged accounts. The
// presence of a row for an email is what grants the ADMIN role claim
// at token issuance.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo returns an AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

const adminColumns = "id, name, email, phone, created_at, updated_at"

func scanAdmin(row interface{ Scan(...any) error }) (model.Admin, error) {
	var (
		a     model.Admin
		phone sql.NullString
	)
	err := row.Scan(&a.ID, &a.Name, &a.Email, &phone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	if phone.Valid {
		p := phone.String
		a.Phone = &p
	}
	return a, nil
}

// List returns every admin, newest first.
func (r *AdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+adminColumns+" FROM admins ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ExistsByEmail reports whether an admin row matches the given email.
func (r *AdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM admins WHERE email=? LIMIT 1", email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts an admin and populates its generated ID.
// ErrEmailExists on a duplicate email.
func (r *AdminRepo) Create(ctx context.Context, a *model.Admin) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO admins (name, email, phone) VALUES (?,?,?)",
		a.Name, a.Email, a.Phone)
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
	a.ID = uint64(id)
	return nil
}

// Update rewrites the mutable columns of an admin. ErrNotFound when
// the id does not exist, ErrEmailExists when the new email collides.
func (r *AdminRepo) Update(ctx context.Context, a *model.Admin) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	res, err := r.db.ExecContext(ctx,
		"UPDATE admins SET name=?, email=?, phone=? WHERE id=?",
		a.Name, a.Email, a.Phone, a.ID)
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
			"SELECT 1 FROM admins WHERE id=? LIMIT 1", a.ID).Scan(&one); qerr == sql.ErrNoRows {
			return ErrNotFound
		} else if qerr != nil {
			return qerr
		}
	}
	return nil
}

// Delete removes an admin. ErrNotFound when it does not exist.
func (r *AdminRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM admins WHERE id=?", id)
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
	return nil
}
