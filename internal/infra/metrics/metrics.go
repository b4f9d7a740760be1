package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bada_cart_adds_total",
		Help: "Cart line additions (merge-adds included).",
	})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bada_orders_created_total",
		Help: "Orders successfully placed at checkout.",
	})

	CheckoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bada_checkout_failures_total",
		Help: "Checkout attempts that did not produce an order.",
	}, []string{"reason"})

	StockUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bada_stock_updates_total",
		Help: "Per-warehouse stock upserts.",
	})
)
