// Package rest adapts the remote bookstore API's /orders surface.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Manuelsilva1/Library/internal/checkout/domain"
	"github.com/Manuelsilva1/Library/pkg/rest"
)

type OrderClient struct {
	api *rest.Client
}

func NewOrderClient(api *rest.Client) *OrderClient {
	return &OrderClient{api: api}
}

// Inbound items tolerate numeric ids via json.Number; outbound items send
// the id verbatim as a string.
type orderItemDTO struct {
	BookID   json.Number `json:"bookId"`
	Quantity int         `json:"quantity"`
}

type requestItemDTO struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

type orderRequestDTO struct {
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Items         []requestItemDTO `json:"items"`
}

type confirmationDTO struct {
	OrderID json.Number `json:"orderId"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
}

type orderDTO struct {
	ID          json.Number     `json:"orderId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []orderItemDTO  `json:"items,omitempty"`
}

func (c *OrderClient) Submit(ctx context.Context, req domain.OrderRequest) (domain.Confirmation, error) {
	dto := orderRequestDTO{
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
	}
	for _, it := range req.Items {
		dto.Items = append(dto.Items, requestItemDTO{
			BookID:   it.BookID,
			Quantity: it.Quantity,
		})
	}

	var conf confirmationDTO
	if err := c.api.Do(ctx, http.MethodPost, "/orders", nil, dto, &conf); err != nil {
		return domain.Confirmation{}, fmt.Errorf("submit order: %w", err)
	}

	return domain.Confirmation{
		OrderID: conf.OrderID.String(),
		Status:  conf.Status,
		Message: conf.Message,
	}, nil
}

func (c *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var dtos []orderDTO
	if err := c.api.Do(ctx, http.MethodGet, "/orders", nil, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toOrder(dto))
	}
	return orders, nil
}

func (c *OrderClient) Get(ctx context.Context, id string) (domain.Order, error) {
	var dto orderDTO
	if err := c.api.Do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return toOrder(dto), nil
}

func toOrder(dto orderDTO) domain.Order {
	o := domain.Order{
		ID:        dto.ID.String(),
		Status:    dto.Status,
		Total:     dto.TotalAmount,
		CreatedAt: dto.CreatedAt,
	}
	for _, it := range dto.Items {
		o.Items = append(o.Items, domain.OrderItem{
			BookID:   it.BookID.String(),
			Quantity: it.Quantity,
		})
	}
	return o
}
