// Package rest adapts the remote bookstore API's auth endpoints.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Manuelsilva1/Library/internal/auth/app"
	"github.com/Manuelsilva1/Library/internal/auth/domain"
	"github.com/Manuelsilva1/Library/pkg/rest"
)

type AuthClient struct {
	api *rest.Client
}

func NewAuthClient(api *rest.Client) *AuthClient {
	return &AuthClient{api: api}
}

type authResponseDTO struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var dto authResponseDTO
	err := c.api.Do(ctx, http.MethodPost, "/auth/login", nil, body, &dto)
	if rest.StatusOf(err) == http.StatusUnauthorized {
		return domain.Session{}, app.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return toSession(dto), nil
}

func (c *AuthClient) Register(ctx context.Context, name, email, password string) (domain.Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var dto authResponseDTO
	if err := c.api.Do(ctx, http.MethodPost, "/auth/register", nil, body, &dto); err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}

	return toSession(dto), nil
}

func toSession(dto authResponseDTO) domain.Session {
	return domain.Session{
		Token:     dto.Token,
		Email:     dto.Email,
		Name:      dto.Name,
		Role:      dto.Role,
		ExpiresAt: tokenExpiry(dto.Token),
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend verifies, we only need to know when to stop sending the token.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
