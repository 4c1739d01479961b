package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manuelsilva1/Library/internal/checkout/domain"
)

func (s *Server) quote(c *gin.Context) {
	quote, err := s.checkout.Quote(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (s *Server) placeOrder(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerEmail string `json:"customerEmail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	conf, err := s.checkout.PlaceOrder(c.Request.Context(), domain.Customer{
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderId": conf.OrderID,
		"status":  conf.Status,
		"message": conf.Message,
	})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.checkout.Orders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.checkout.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) registerSale(c *gin.Context) {
	var req struct {
		SellerID     string `json:"sellerId"`
		CustomerName string `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	receipt, err := s.sales.RegisterSale(c.Request.Context(), req.SellerID, req.CustomerName)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
