package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/Manuelsilva1/Library/internal/auth/app"
	catalogapp "github.com/Manuelsilva1/Library/internal/catalog/app"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
	saleapp "github.com/Manuelsilva1/Library/internal/sale/app"
	"github.com/Manuelsilva1/Library/pkg/rest"
)

// httpStatusFromError maps service errors to a response status plus a short
// machine code. Upstream API failures keep their original status; everything
// unexpected is a 502 because this process fronts a remote backend.
func httpStatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidCustomer),
		errors.Is(err, checkoutapp.ErrInvalidOrderID),
		errors.Is(err, saleapp.ErrMissingSellerID):
		return http.StatusBadRequest, "INVALID_INPUT"

	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"

	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, saleapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"

	case errors.Is(err, authapp.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	}

	if status := rest.StatusOf(err); status != 0 {
		return status, "UPSTREAM_ERROR"
	}

	return http.StatusBadGateway, "UPSTREAM_ERROR"
}

// fail writes the single human-readable message the UI shows; nothing here is
// retried automatically.
func fail(c *gin.Context, err error) {
	status, code := httpStatusFromError(err)
	c.JSON(status, gin.H{
		"code":    code,
		"message": err.Error(),
	})
}
