package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID         string
	BuyerID    string
	SellerID   string
	ListingID  string
	Category   string
	Price      decimal.Decimal
	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal
	Currency   string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
