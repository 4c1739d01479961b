package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleItem struct {
	BookID   string
	Quantity int
}

// SaleRequest is a point-of-sale transaction: the seller rings up items for a
// walk-in customer, whose name is optional.
type SaleRequest struct {
	SellerID     string
	CustomerName string
	Items        []SaleItem
}

type Receipt struct {
	SaleID      string
	Timestamp   time.Time
	TotalAmount decimal.Decimal
}
