package repository

import (
	"context"
	"strings"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// ServiceSearchQuery defines filters and pagination for the SQL-side
// service search. Price bounds come from a resolved price bucket:
// PriceUnder means price < v, PriceOver means price > v and the
// Min/Max pair is an inclusive band.
type ServiceSearchQuery struct {
	Name       string
	Type       string
	Location   string
	PriceMin   *int64
	PriceMax   *int64
	PriceUnder *int64
	PriceOver  *int64
	Page       int
	PageSize   int
}

// Search returns the page of available services matching every active
// filter, newest first, plus the total match count.
func (r *ServiceRepo) Search(ctx context.Context, q ServiceSearchQuery) ([]model.Service, int64, error) {
	where := []string{"status = ?"}
	args := []any{model.StatusAvailable}

	if q.Name != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Type != "" {
		where = append(where, "type = ?")
		args = append(args, q.Type)
	}
	if q.Location != "" {
		where = append(where, "location = ?")
		args = append(args, q.Location)
	}
	switch {
	case q.PriceUnder != nil:
		where = append(where, "price < ?")
		args = append(args, *q.PriceUnder)
	case q.PriceOver != nil:
		where = append(where, "price > ?")
		args = append(args, *q.PriceOver)
	default:
		if q.PriceMin != nil {
			where = append(where, "price >= ?")
			args = append(args, *q.PriceMin)
		}
		if q.PriceMax != nil {
			where = append(where, "price <= ?")
			args = append(args, *q.PriceMax)
		}
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM services WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	dataArgs := append(append([]any{}, args...), limit, offset)

	items, err := r.list(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE "+cond+
			" ORDER BY id DESC LIMIT ? OFFSET ?", dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
