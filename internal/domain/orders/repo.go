package orders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Create persists address, order shell and lines in one transaction —
// either the whole order becomes visible or none of it. Transient
// conflicts are retried a few times; each attempt is a fresh tx.
func (r *Repo) Create(ctx context.Context, no NewOrder) (*Order, error) {
	var out *Order
	err := withRetry(ctx, func(ctx context.Context) error {
		o, err := r.create(ctx, no)
		if err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) create(ctx context.Context, no NewOrder) (*Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	addr := no.Address
	if err = tx.QueryRow(ctx, `
		INSERT INTO addresses (address_line_1, address_line_2, zipcode, city, country_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, addr.Line1, addr.Line2, addr.Zipcode, addr.City, addr.CountryID).Scan(&addr.ID); err != nil {
		return nil, err
	}

	o := Order{
		Status:             StatusReceived,
		CustomerID:         no.CustomerID,
		AssignedEmployeeID: &no.AssignedEmployeeID,
		Address:            addr,
	}
	if err = tx.QueryRow(ctx, `
		INSERT INTO orders (status, customer_id, assigned_employee_id, address_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id, order_date
	`, o.Status, o.CustomerID, no.AssignedEmployeeID, addr.ID).Scan(&o.ID, &o.Date); err != nil {
		return nil, err
	}

	for _, l := range no.Lines {
		if _, err = tx.Exec(ctx, `
			INSERT INTO orders_items (order_id, item_id, ordered_item_quantity, unit_price)
			VALUES ($1,$2,$3,$4)
		`, o.ID, l.ItemID, l.Quantity, l.UnitPrice); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, Line{
			OrderID:   o.ID,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) ByID(ctx context.Context, id int64) (*Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT o.id, o.order_date, o.status, o.customer_id, o.assigned_employee_id,
		       a.id, a.address_line_1, a.address_line_2, a.zipcode, a.city, a.country_id
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		WHERE o.id = $1
	`, id)

	var o Order
	if err := row.Scan(
		&o.ID, &o.Date, &o.Status, &o.CustomerID, &o.AssignedEmployeeID,
		&o.Address.ID, &o.Address.Line1, &o.Address.Line2, &o.Address.Zipcode,
		&o.Address.City, &o.Address.CountryID,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	lines, err := r.lines(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *Repo) lines(ctx context.Context, orderID int64) ([]Line, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, item_id, ordered_item_quantity, unit_price
		FROM orders_items
		WHERE order_id = $1
		ORDER BY item_id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListAssigned returns the orders handled by one employee, newest first.
func (r *Repo) ListAssigned(ctx context.Context, employeeID int64) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.order_date, o.status, o.customer_id, o.assigned_employee_id,
		       a.id, a.address_line_1, a.address_line_2, a.zipcode, a.city, a.country_id
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		WHERE o.assigned_employee_id = $1
		ORDER BY o.order_date DESC, o.id DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.Date, &o.Status, &o.CustomerID, &o.AssignedEmployeeID,
			&o.Address.ID, &o.Address.Line1, &o.Address.Line2, &o.Address.Zipcode,
			&o.Address.City, &o.Address.CountryID,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) SetStatus(ctx context.Context, orderID int64, status Status) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, orderID, status)
	return err
}
