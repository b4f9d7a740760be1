package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RouNNdeL/bada-project/internal/domain/cart"
	"github.com/RouNNdeL/bada-project/internal/domain/catalog"
	"github.com/RouNNdeL/bada-project/internal/domain/customers"
	"github.com/RouNNdeL/bada-project/internal/domain/employees"
	"github.com/RouNNdeL/bada-project/internal/domain/errs"
	"github.com/RouNNdeL/bada-project/internal/domain/geo"
	"github.com/RouNNdeL/bada-project/internal/infra/metrics"
	"github.com/RouNNdeL/bada-project/internal/infra/notify"
)

// Collaborators the checkout consumes; production wiring uses the pgx
// repos, tests substitute fakes.
type (
	CountryFinder interface {
		DefaultCountry(ctx context.Context) (*geo.Country, error)
	}

	EmployeeSelector interface {
		SelectFulfillment(ctx context.Context) (*employees.Employee, error)
	}

	OrderCreator interface {
		Create(ctx context.Context, no NewOrder) (*Order, error)
	}
)

// AddressInput is the shipping form as the caller submits it. The
// country is always the store default.
type AddressInput struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	Zip          string
}

type Checkout struct {
	items     cart.ItemFinder
	countries CountryFinder
	selector  EmployeeSelector
	orders    OrderCreator
	carts     *cart.Store
	notifier  *notify.Notifier
	log       *slog.Logger
}

func NewCheckout(
	items cart.ItemFinder,
	countries CountryFinder,
	selector EmployeeSelector,
	orders OrderCreator,
	carts *cart.Store,
	notifier *notify.Notifier,
	log *slog.Logger,
) *Checkout {
	return &Checkout{
		items:     items,
		countries: countries,
		selector:  selector,
		orders:    orders,
		carts:     carts,
		notifier:  notifier,
		log:       log,
	}
}

// Checkout converts the session's cart into a persisted order: resolve
// and validate the cart, pick a fulfillment employee, snapshot the
// shipping address and priced lines, persist everything atomically,
// then clear the cart. On any failure the cart is left untouched so the
// caller can retry.
func (c *Checkout) Checkout(ctx context.Context, session string, customer customers.Customer, in AddressInput) (int64, error) {
	resolved, err := c.carts.Get(session).Resolve(ctx, c.items)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("resolve").Inc()
		return 0, fmt.Errorf("resolve cart: %w", err)
	}
	if len(resolved) == 0 {
		metrics.CheckoutFailures.WithLabelValues("empty_cart").Inc()
		return 0, errs.ErrEmptyCart
	}

	employee, err := c.selector.SelectFulfillment(ctx)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("employee").Inc()
		return 0, fmt.Errorf("select fulfillment employee: %w", err)
	}
	if employee == nil {
		metrics.CheckoutFailures.WithLabelValues("employee").Inc()
		return 0, fmt.Errorf("fulfillment employee: %w", errs.ErrNotFound)
	}

	country, err := c.countries.DefaultCountry(ctx)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("country").Inc()
		return 0, fmt.Errorf("default country: %w", err)
	}
	if country == nil {
		metrics.CheckoutFailures.WithLabelValues("country").Inc()
		return 0, fmt.Errorf("default country: %w", errs.ErrNotFound)
	}

	no := NewOrder{
		CustomerID:         customer.ID,
		AssignedEmployeeID: employee.ID,
		Address: geo.Address{
			Line1:     in.AddressLine1,
			Line2:     in.AddressLine2,
			Zipcode:   in.Zip,
			City:      in.City,
			CountryID: country.ID,
		},
		Lines: make([]NewLine, 0, len(resolved)),
	}
	for _, line := range resolved {
		no.Lines = append(no.Lines, NewLine{
			ItemID:    line.Item.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	order, err := c.orders.Create(ctx, no)
	if err != nil {
		// Cart stays as it was; nothing of the order is visible.
		metrics.CheckoutFailures.WithLabelValues("storage").Inc()
		return 0, fmt.Errorf("create order: %w", err)
	}

	c.carts.Clear(session)
	metrics.OrdersCreated.Inc()
	c.log.Info("order created",
		"order_id", order.ID,
		"customer_id", customer.ID,
		"employee_id", employee.ID,
		"lines", len(order.Lines),
	)
	c.notifier.OrderCreated(order.ID, customer.FirstName+" "+customer.LastName, order.Total())
	return order.ID, nil
}

// Production repos satisfy the collaborator interfaces.
var (
	_ cart.ItemFinder  = (*catalog.Repo)(nil)
	_ CountryFinder    = (*geo.Repo)(nil)
	_ EmployeeSelector = (*employees.Repo)(nil)
	_ OrderCreator     = (*Repo)(nil)
	_ StatusStore      = (*Repo)(nil)
)
