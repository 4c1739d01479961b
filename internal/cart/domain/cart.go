package domain

import "github.com/shopspring/decimal"

// UnboundedStock marks a line item whose product carried no stock figure.
const UnboundedStock = 0

// Product is the value object the catalog hands to the cart when a book is
// added. Anything beyond price and stock is display data carried along for
// the snapshot.
type Product struct {
	ID            string
	Title         string
	Author        string
	CoverImageURL string
	UnitPrice     decimal.Decimal
	StockLimit    int
}

// LineItem is one book in the cart. StockLimit is captured when the item is
// first added and never refreshed afterwards.
type LineItem struct {
	BookID        string          `json:"bookId"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	CoverImageURL string          `json:"coverImageUrl,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int             `json:"quantity"`
	StockLimit    int             `json:"stockLimit"`
}

// LineTotal is quantity times unit price, unrounded.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Valid reports whether a persisted line item is well formed enough to load.
func (li LineItem) Valid() bool {
	return li.BookID != "" && li.Quantity >= 1 && !li.UnitPrice.IsNegative()
}

// Snapshot is the published cart state: the line items in insertion order
// plus the totals derived from them.
type Snapshot struct {
	Items         []LineItem      `json:"items"`
	TotalQuantity int             `json:"totalQuantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Derive recomputes a snapshot from a line-item sequence. The subtotal is
// rounded to two decimal places.
func Derive(items []LineItem) Snapshot {
	totalQty := 0
	subtotal := decimal.Zero

	for _, li := range items {
		totalQty += li.Quantity
		subtotal = subtotal.Add(li.LineTotal())
	}

	return Snapshot{
		Items:         items,
		TotalQuantity: totalQty,
		Subtotal:      subtotal.Round(2),
	}
}
