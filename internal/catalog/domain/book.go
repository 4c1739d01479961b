package domain

import "github.com/shopspring/decimal"

type Book struct {
	ID            string
	Title         string
	Author        string
	ISBN          string
	Price         decimal.Decimal
	Stock         *int
	Category      string
	CoverImageURL string
	Description   string
}

// StockLimit flattens the optional stock figure for cart use: zero means the
// backend reported none.
func (b Book) StockLimit() int {
	if b.Stock == nil {
		return 0
	}
	return *b.Stock
}

// Page is one page of catalog results as the remote API reports them.
type Page struct {
	Content       []Book
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

type Filters struct {
	Category   string
	Author     string
	SearchTerm string
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Category == "" && f.Author == "" && f.SearchTerm == "" &&
		!f.PriceMin.IsPositive() && !f.PriceMax.IsPositive()
}
