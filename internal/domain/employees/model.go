package employees

import "github.com/RouNNdeL/bada-project/internal/domain/auth"

type Employee struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      auth.Role
	CompanyID int64
	// Warehouse the employee works at; nil for staff without one.
	WarehouseID *int64
}

func (e Employee) Principal() auth.EmployeePrincipal {
	return auth.EmployeePrincipal{
		ID:        e.ID,
		Company:   e.CompanyID,
		Role:      e.Role,
		Warehouse: e.WarehouseID,
	}
}

func (e Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName
}
