package customers

import "github.com/RouNNdeL/bada-project/internal/domain/auth"

type Customer struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	NIP       string
	Phone     string
	CompanyID int64
}

func (c Customer) Principal() auth.CustomerPrincipal {
	return auth.CustomerPrincipal{ID: c.ID, Company: c.CompanyID}
}
