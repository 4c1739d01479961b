// Package rest is the thin HTTP client core shared by the storefront's
// upstream API adapters. The remote bookstore API is opaque: this package
// only shapes requests, attaches the bearer token and collapses failures into
// one human-readable error. Nothing here retries.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for authenticated calls. ok is false
// when no session is active; the request then goes out anonymous.
type TokenSource interface {
	Token() (token string, ok bool)
}

type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

// NewClient builds a client for the API rooted at base. tokens may be nil
// for purely anonymous use.
func NewClient(base string, tokens TokenSource) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: tokens,
	}
}

// Do performs one request round trip. body and out may be nil; out is filled
// from a JSON response body when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bookstore api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// APIError is a non-2xx answer from the remote API, carrying whatever
// explanation the backend offered.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("bookstore api: %s (%s)", msg, strings.Join(e.Details, "; "))
	}
	return "bookstore api: " + msg
}

// StatusOf extracts the HTTP status from an error chain, or zero.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var dto struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &dto) == nil {
		apiErr.Message = dto.Message
		apiErr.Details = dto.Errors
	}

	return apiErr
}
