package order_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"orderservice/internal/entities"
	"orderservice/pkg/logger"
)

var ordersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Current number of orders per lifecycle status",
	},
	[]string{"status"},
)

type Service interface {
	OrderStatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.OrderStatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы без заказов обнуляем, иначе гейдж застрянет на старом значении
	statuses := []entities.OrderStatusType{
		entities.OrderPendingPayment,
		entities.OrderPaid,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCompleted,
		entities.OrderCancelled,
	}
	for _, status := range statuses {
		ordersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	o.log.With(
		logger.NewField("statuses", len(counts)),
	).Info("order stats refreshed")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
