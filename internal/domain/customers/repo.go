package customers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const customerCols = `id, username, email, first_name, last_name, nip, phone_number, company_id`

func (r *Repo) ByID(ctx context.Context, id int64) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+customerCols+` FROM customers WHERE id = $1
	`, id)
	return scanCustomer(row)
}

func (r *Repo) ByUsername(ctx context.Context, username string) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+customerCols+` FROM customers WHERE username = $1
	`, username)
	return scanCustomer(row)
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(
		&c.ID, &c.Username, &c.Email, &c.FirstName, &c.LastName,
		&c.NIP, &c.Phone, &c.CompanyID,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
