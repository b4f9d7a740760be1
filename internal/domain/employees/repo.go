package employees

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const employeeCols = `id, username, email, first_name, last_name, role, company_id, warehouse_id`

func (r *Repo) ByID(ctx context.Context, id int64) (*Employee, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeCols+` FROM employees WHERE id = $1
	`, id)
	return scanEmployee(row)
}

func (r *Repo) ByUsername(ctx context.Context, username string) (*Employee, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeCols+` FROM employees WHERE username = $1
	`, username)
	return scanEmployee(row)
}

// SelectFulfillment picks the warehouse employee with the fewest open
// orders, ties broken by id. Returns nil when no employee can take the
// order.
func (r *Repo) SelectFulfillment(ctx context.Context) (*Employee, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT e.id, e.username, e.email, e.first_name, e.last_name, e.role, e.company_id, e.warehouse_id
		FROM employees e
		LEFT JOIN orders o ON o.assigned_employee_id = e.id AND o.status <> 'COMPLETED'
		WHERE e.role = 'WAREHOUSE_EMPLOYEE'
		GROUP BY e.id
		ORDER BY COUNT(o.id) ASC, e.id ASC
		LIMIT 1
	`)
	return scanEmployee(row)
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	var e Employee
	if err := row.Scan(
		&e.ID, &e.Username, &e.Email, &e.FirstName, &e.LastName,
		&e.Role, &e.CompanyID, &e.WarehouseID,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
