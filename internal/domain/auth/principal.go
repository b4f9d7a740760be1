package auth

// Permission names a single action a principal may perform.
type Permission string

const (
	PermReadStock      Permission = "READ_STOCK"
	PermCreateOrder    Permission = "CREATE_ORDER"
	PermChangeStock    Permission = "CHANGE_STOCK"
	PermChangeStockAll Permission = "CHANGE_STOCK_ALL"
	PermChangePrice    Permission = "CHANGE_PRICE"
	PermHandleOrder    Permission = "HANDLE_ORDER"
	PermAssignOrders   Permission = "ASSIGN_ORDERS"
	PermDeleteItem     Permission = "DELETE_ITEM"
	PermAddItem        Permission = "ADD_ITEM"
)

type Role string

const (
	RoleCustomer         Role = "CUSTOMER"
	RoleWarehouseWorker  Role = "WAREHOUSE_EMPLOYEE"
	RoleWarehouseManager Role = "WAREHOUSE_MANAGER"
)

var rolePermissions = map[Role][]Permission{
	RoleCustomer: {PermReadStock, PermCreateOrder},
	RoleWarehouseWorker: {
		PermReadStock, PermChangeStock, PermHandleOrder,
	},
	RoleWarehouseManager: {
		PermReadStock, PermChangeStock, PermChangeStockAll, PermAssignOrders,
		PermChangePrice, PermDeleteItem, PermAddItem,
	},
}

// Principal is the caller identity, a closed sum over customers and
// employees. Consumers switch on the concrete type instead of casting.
type Principal interface {
	CompanyID() int64
	Has(p Permission) bool

	principal()
}

type CustomerPrincipal struct {
	ID      int64
	Company int64
}

func (c CustomerPrincipal) CompanyID() int64 { return c.Company }
func (c CustomerPrincipal) Has(p Permission) bool {
	return hasPermission(RoleCustomer, p)
}
func (CustomerPrincipal) principal() {}

type EmployeePrincipal struct {
	ID      int64
	Company int64
	Role    Role
	// Warehouse the employee is stationed at; nil for unassigned staff.
	Warehouse *int64
}

func (e EmployeePrincipal) CompanyID() int64 { return e.Company }
func (e EmployeePrincipal) Has(p Permission) bool {
	return hasPermission(e.Role, p)
}
func (EmployeePrincipal) principal() {}

func hasPermission(r Role, p Permission) bool {
	for _, have := range rolePermissions[r] {
		if have == p {
			return true
		}
	}
	return false
}
