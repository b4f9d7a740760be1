package orders

import (
	"context"
	"fmt"

	"github.com/RouNNdeL/bada-project/internal/domain/auth"
	"github.com/RouNNdeL/bada-project/internal/domain/errs"
)

// StatusStore is what status advancement needs from persistence.
type StatusStore interface {
	ByID(ctx context.Context, id int64) (*Order, error)
	SetStatus(ctx context.Context, orderID int64, status Status) error
}

// AdvanceStatus moves an order forward through its lifecycle. Only the
// assigned employee may touch it, and only in the forward direction.
func AdvanceStatus(ctx context.Context, store StatusStore, emp auth.EmployeePrincipal, orderID int64, to Status) error {
	order, err := store.ByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, errs.ErrNotFound)
	}

	if !emp.Has(auth.PermHandleOrder) {
		return errs.ErrForbidden
	}
	if order.AssignedEmployeeID == nil || *order.AssignedEmployeeID != emp.ID {
		return errs.ErrForbidden
	}

	if !order.Status.CanAdvance(to) {
		return errs.Invalid("status", fmt.Sprintf("cannot move from %s to %s", order.Status, to))
	}

	if err := store.SetStatus(ctx, orderID, to); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}
