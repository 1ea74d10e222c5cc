// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/session"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	refreshPath     = "/auth/refresh-token"
	requestIDHeader = "X-Request-ID"
)

// Client sends [Request] values to the API. It is safe for concurrent use.
type Client struct {
	http    *utils.HTTPClient
	session SessionStore
	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	// refresh coalesces concurrent refreshes of the same refresh token.
	refresh singleflight.Group

	logger *logger.Logger
}

// Response is a decoded 2xx response.
type Response struct {
	Status   int
	Body     []byte
	Envelope models.Envelope
}

// NewClient builds a client for cfg.BaseURL reading tokens from session.
// A positive cfg.RateLimit throttles outgoing requests.
func NewClient(cfg config.ClientAdapter, session SessionStore, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &Client{
		http:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		session: session,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do sends req and decodes the response envelope. A 401 on a request that
// is neither unauthenticated nor already retried is recovered once by
// refreshing the token pair.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	resp, sentToken, err := c.send(ctx, req)
	if err != nil {
		c.logFailure(err)
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized && !req.skipAuth && !req.retried {
		return c.recover(ctx, req, sentToken, mapHTTPError(req, resp))
	}
	return c.decode(req, resp)
}

// send performs one HTTP exchange and returns the access token it attached.
func (c *Client) send(ctx context.Context, req Request) (*resty.Response, string, *APIError) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, "", newNetworkError(req, c.http.BaseURL+req.path, err)
		}
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, c.ids.Generate())

	var token string
	if !req.skipAuth {
		token = c.session.AccessToken()
		if token != "" {
			r.SetAuthToken(token)
		}
	}
	if len(req.query) > 0 {
		r.SetQueryParamsFromValues(req.query)
	}

	switch {
	case req.multipart():
		r.SetMultipartFormData(req.form)
		for _, f := range req.files {
			r.SetMultipartField(f.Param, f.FileName, f.ContentType, bytes.NewReader(f.Content))
		}
	case req.body != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		return nil, token, newNetworkError(req, c.http.BaseURL+req.path, err)
	}
	return resp, token, nil
}

func (c *Client) recover(ctx context.Context, req Request, sentToken string, unauthorized *APIError) (*Response, error) {
	// Another request refreshed the pair while this one was in flight.
	if current := c.session.AccessToken(); current != "" && current != sentToken {
		return c.Do(ctx, req.retry())
	}

	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return nil, c.expire(ctx, unauthorized, ErrNoRefreshToken)
	}

	if err := c.refreshTokens(ctx, refreshToken); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newNetworkError(req, unauthorized.URL, ctxErr)
		}
		if errors.Is(err, session.ErrSessionChanged) {
			return c.afterSessionChange(ctx, req, unauthorized)
		}
		return nil, c.expire(ctx, unauthorized, err)
	}

	c.logger.Debug().Str("method", req.method).Str("path", req.path).Msg("resending request after token refresh")
	return c.Do(ctx, req.retry())
}

// afterSessionChange handles a refresh whose session was logged out or
// replaced while it was in flight. A new sign-in gets the single retry; a
// logout surfaces the original 401 without ending the session again.
func (c *Client) afterSessionChange(ctx context.Context, req Request, unauthorized *APIError) (*Response, error) {
	if c.session.AccessToken() != "" {
		return c.Do(ctx, req.retry())
	}
	c.logger.Debug().Str("method", req.method).Str("path", req.path).Msg("session ended during token refresh")
	return nil, unauthorized
}

// refreshTokens exchanges refreshToken for a new pair and stores it. Callers
// sharing the same refresh token share one exchange.
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) error {
	ch := c.refresh.DoChan(refreshToken, func() (any, error) {
		return nil, c.exchange(context.WithoutCancel(ctx), refreshToken)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) exchange(ctx context.Context, refreshToken string) error {
	req := NewRequest(http.MethodPost, refreshPath).
		WithBody(models.RefreshRequest{RefreshToken: refreshToken}).
		WithoutAuth().
		retry()

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	auth, err := decodeAuth(resp)
	if err != nil {
		return payloadError(req, resp, err)
	}

	pair := auth.Pair()
	if !pair.Complete() {
		return ErrIncompleteRefresh
	}
	if err = c.session.UpdateTokens(ctx, refreshToken, pair, auth.User); err != nil {
		if errors.Is(err, session.ErrSessionChanged) {
			c.logger.Info().Msg("refreshed tokens dropped, the session changed meanwhile")
			return err
		}
		c.logger.Warn().Err(err).Msg("refreshed tokens were not persisted")
	}

	c.logger.Info().Msg("access token refreshed")
	return nil
}

// expire clears the session and returns the error surfaced to the caller.
func (c *Client) expire(ctx context.Context, unauthorized *APIError, cause error) error {
	err := sessionExpired(unauthorized, cause)
	c.logFailure(err)

	if logoutErr := c.session.Logout(context.WithoutCancel(ctx), err); logoutErr != nil {
		c.logger.Err(logoutErr).Msg("failed to clear session after refresh failure")
	}
	return err
}

func (c *Client) decode(req Request, resp *resty.Response) (*Response, error) {
	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		apiErr := mapHTTPError(req, resp)
		c.logFailure(apiErr)
		return nil, apiErr
	}

	out := &Response{Status: resp.StatusCode(), Body: resp.Body()}
	if len(bytes.TrimSpace(out.Body)) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(out.Body, &out.Envelope); err != nil {
		apiErr := decodeError(req, resp, err)
		c.logFailure(apiErr)
		return nil, apiErr
	}
	if !out.Envelope.Success {
		apiErr := logicalFailure(req, resp, out.Envelope)
		c.logFailure(apiErr)
		return nil, apiErr
	}
	return out, nil
}

func (c *Client) logFailure(err *APIError) {
	ev := c.logger.Warn()
	if err.Kind == KindNetwork && errors.Is(err.Err, context.Canceled) {
		ev = c.logger.Debug()
	}
	ev.Str("kind", err.Kind.String()).
		Int("status", err.Status).
		Str("method", err.Method).
		Str("url", err.URL).
		Str("server_message", err.ServerMessage).
		AnErr("cause", err.Err).
		Msg(err.Message)
}

// decodeAuth reads an auth response. The tokens are expected at the top
// level; a data object carrying them is accepted as well.
func decodeAuth(resp *Response) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := json.Unmarshal(resp.Body, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	if !auth.Pair().Complete() && len(resp.Envelope.Data) > 0 {
		var nested models.AuthResponse
		if err := json.Unmarshal(resp.Envelope.Data, &nested); err == nil && nested.Pair().Complete() {
			nested.Success = auth.Success
			if nested.Message == "" {
				nested.Message = auth.Message
			}
			return nested, nil
		}
	}
	return auth, nil
}
