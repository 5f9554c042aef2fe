// Package api implements the HTTP plumbing shared by the auth and file
// services: request building against the configured base URL, header
// injection, envelope decoding, and error normalization.
//
// Two client variants exist. The unauthenticated variant (NewClient)
// defaults to a JSON content type and is used for login and signup. The
// authenticated variant (NewAuthorizedClient) reads the bearer token from
// a session store before every call and injects an Authorization header.
// When no token is stored the header is omitted entirely.
//
// All failures surface as *Error. Transport-level failures (DNS,
// connection refused, timeout) collapse to status 500 with a generic
// network message; the underlying cause is logged, not propagated.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/e-lobo/herogram-go/internal/common"
	"github.com/e-lobo/herogram-go/internal/logging"
	"github.com/e-lobo/herogram-go/internal/models"
)

const (
	defaultErrorMessage = "An error occurred"
	networkErrorMessage = "Network error occurred"
)

// TokenSource yields the current bearer token, if any. session.Store
// satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient returns the unauthenticated variant used by the auth service.
func NewClient(baseURL string, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// NewAuthorizedClient returns the authenticated variant. The token is read
// from tokens at call time, before each request.
func NewAuthorizedClient(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	c := NewClient(baseURL, log)
	c.tokens = tokens
	return c
}

// decorate applies the variant's default headers plus a correlation id.
// Headers already present are left alone.
func (c *Client) decorate(req *http.Request) {
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
		return
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
}

// JSON issues a request with an optional JSON body and decodes the response
// into out (which may be nil).
//
// A 204 status or a zero-length body is an empty success: out is left
// untouched and no decoding is attempted. A non-2xx status raises *Error
// carrying the envelope's message.
func (c *Client) JSON(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return &Error{StatusCode: http.StatusInternalServerError, Message: networkErrorMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed", "method", method, "endpoint", endpoint, "error", err)
		return &Error{StatusCode: http.StatusInternalServerError, Message: networkErrorMessage}
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Upload sends r as the "file" part of a multipart body. It bypasses
// envelope decoding: beyond the request settling, no structured success or
// failure is surfaced to the caller.
func (c *Client) Upload(ctx context.Context, endpoint, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return err
	}
	c.decorate(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "upload failed", "endpoint", endpoint, "file", filename, "error", err)
		return &Error{StatusCode: http.StatusInternalServerError, Message: networkErrorMessage}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Debug(ctx, "upload settled", "file", filename, "status", resp.StatusCode)
	return nil
}

// Download streams a binary response body into w. A non-2xx status raises
// *Error the same way JSON does.
func (c *Client) Download(ctx context.Context, endpoint string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "download failed", "endpoint", endpoint, "error", err)
		return &Error{StatusCode: http.StatusInternalServerError, Message: networkErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return decodeError(resp.StatusCode, data)
	}

	_, err = io.Copy(w, resp.Body)
	return err
}

func decodeError(status int, data []byte) *Error {
	msg := defaultErrorMessage
	var env models.ErrorEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		msg = env.Message
	}
	return &Error{StatusCode: status, Message: msg}
}
