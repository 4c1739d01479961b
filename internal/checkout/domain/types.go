package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	Name  string
	Email string
}

type OrderItem struct {
	BookID   string
	Quantity int
}

type OrderRequest struct {
	Customer Customer
	Items    []OrderItem
}

// Confirmation is the backend's answer to a submitted order.
type Confirmation struct {
	OrderID string
	Status  string
	Message string
}

// Order is a previously placed order, for basic viewing.
type Order struct {
	ID        string
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []OrderItem
}

type QuoteLine struct {
	BookID    string
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Quote prices the current cart against the live catalog, line by line.
type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}
