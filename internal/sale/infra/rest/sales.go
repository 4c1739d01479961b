// Package rest adapts the remote bookstore API's /sales surface.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Manuelsilva1/Library/internal/sale/domain"
	"github.com/Manuelsilva1/Library/pkg/rest"
)

type SaleClient struct {
	api *rest.Client
}

func NewSaleClient(api *rest.Client) *SaleClient {
	return &SaleClient{api: api}
}

type saleItemDTO struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

type saleRequestDTO struct {
	SellerID     string        `json:"sellerId"`
	CustomerName string        `json:"customerName,omitempty"`
	Items        []saleItemDTO `json:"items"`
}

type receiptDTO struct {
	SaleID      json.Number     `json:"saleId"`
	Timestamp   time.Time       `json:"timestamp"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (c *SaleClient) Register(ctx context.Context, req domain.SaleRequest) (domain.Receipt, error) {
	dto := saleRequestDTO{
		SellerID:     req.SellerID,
		CustomerName: req.CustomerName,
	}
	for _, it := range req.Items {
		dto.Items = append(dto.Items, saleItemDTO{
			BookID:   it.BookID,
			Quantity: it.Quantity,
		})
	}

	var receipt receiptDTO
	if err := c.api.Do(ctx, http.MethodPost, "/sales", nil, dto, &receipt); err != nil {
		return domain.Receipt{}, fmt.Errorf("register sale: %w", err)
	}

	return domain.Receipt{
		SaleID:      receipt.SaleID.String(),
		Timestamp:   receipt.Timestamp,
		TotalAmount: receipt.TotalAmount,
	}, nil
}
