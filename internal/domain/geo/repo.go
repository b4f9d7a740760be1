package geo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// DefaultCountry returns the configured default shipping country.
func (r *Repo) DefaultCountry(ctx context.Context) (*Country, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, country_name, iso_3166_1, phone_prefix
		FROM countries WHERE is_default = TRUE
		ORDER BY id LIMIT 1
	`)
	var c Country
	if err := row.Scan(&c.ID, &c.Name, &c.ISOCode, &c.PhonePrefix); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) CountryByName(ctx context.Context, name string) (*Country, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, country_name, iso_3166_1, phone_prefix
		FROM countries WHERE country_name = $1
	`, name)
	var c Country
	if err := row.Scan(&c.ID, &c.Name, &c.ISOCode, &c.PhonePrefix); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// SaveAddress persists a standalone address and assigns its identity.
// Checkout does not use this — the order transaction inserts its own
// address row so all three writes commit or roll back together.
func (r *Repo) SaveAddress(ctx context.Context, a Address) (*Address, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO addresses (address_line_1, address_line_2, zipcode, city, country_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, a.Line1, a.Line2, a.Zipcode, a.City, a.CountryID)
	if err := row.Scan(&a.ID); err != nil {
		return nil, err
	}
	return &a, nil
}
