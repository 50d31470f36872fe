package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         string
	BuyerID    string
	SellerID   string
	ListingID  string
	Category   string
	Price      decimal.Decimal
	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal
	Currency   string
	Status     OrderStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderDraft содержит все поля заказа кроме тех, что назначает хранилище
// (id, status, created_at, updated_at).
type OrderDraft struct {
	BuyerID    string
	SellerID   string
	ListingID  string
	Category   string
	Price      decimal.Decimal
	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal
	Currency   string
}

type OrderStatusType string

const (
	OrderPendingPayment OrderStatusType = "pending_payment"
	OrderPaid           OrderStatusType = "paid"
	OrderShipped        OrderStatusType = "shipped"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCompleted      OrderStatusType = "completed"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal: из completed и cancelled переходов нет ни для одной роли.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPendingPayment, OrderPaid, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}
