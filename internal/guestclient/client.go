// Package guestclient is the client half of the invitation access flow: a
// device fingerprinter, the access session cache, and HTTP clients for the
// guest and admin routes.
package guestclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"guestpass/internal/delivery/api/response"
	"guestpass/internal/delivery/api/router/handler"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/errors"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Is lets callers match server failures against the domain catalog, as in
// errors.Is(err, domainerrors.ErrTokenInvalid).
func (e *APIError) Is(target error) bool {
	known, ok := domainerrors.ByCode(e.Code)

	return ok && errors.Is(known, target)
}

// Client performs JSON calls against a guestpass server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client and its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New returns a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) newRequest(ctx context.Context, method, path, bearer string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	return req, nil
}

// send executes req and returns the raw body of a 2xx answer.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}

		var envelope response.ErrorResponse
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
			apiErr.Details = envelope.Error.Details
		}

		return nil, apiErr
	}

	return data, nil
}

// call sends a JSON request and decodes the data field of the envelope into out.
func (c *Client) call(ctx context.Context, method, path, bearer string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, bearer, body)
	if err != nil {
		return err
	}

	data, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return errors.Wrap(json.Unmarshal(envelope.Data, out), "decode response data")
}

func accessPath(token string, suffix string) string {
	return "/api/v1/access/" + url.PathEscape(token) + suffix
}

func (c *Client) VerifyToken(ctx context.Context, token string) (*usecase.GuestProjection, error) {
	var out usecase.GuestProjection
	if err := c.call(ctx, http.MethodGet, accessPath(token, ""), "", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Decide(ctx context.Context, token string, req handler.DecideRequest) (*handler.DecisionResponse, error) {
	var out handler.DecisionResponse
	if err := c.call(ctx, http.MethodPost, accessPath(token, "/decide"), "", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) SubmitIdentity(ctx context.Context, token string, req handler.SubmitIdentityRequest) (*handler.SubmitIdentityResponse, error) {
	var out handler.SubmitIdentityResponse
	if err := c.call(ctx, http.MethodPost, accessPath(token, "/identity"), "", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Invitation(ctx context.Context, grant string) (*usecase.GuestProjection, error) {
	var out usecase.GuestProjection
	if err := c.call(ctx, http.MethodGet, "/api/v1/invitation", grant, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Visitor runs the client side of the access flow for one browser profile.
type Visitor struct {
	client        *Client
	cache         *AccessCache
	fingerprinter *Fingerprinter
	logger        *slog.Logger
}

// NewVisitor walks the guest flow, caching identities and the fingerprint seed in store.
func NewVisitor(client *Client, store SessionStore, source SignalSource, logger *slog.Logger) *Visitor {
	return &Visitor{
		client:        client,
		cache:         NewAccessCache(store),
		fingerprinter: NewFingerprinter(source, store),
		logger:        logger,
	}
}

// Visit asks the server for a decision and applies its cache instructions.
// Errors must be shown as access denied.
func (v *Visitor) Visit(ctx context.Context, token string) (*handler.DecisionResponse, error) {
	cached, err := v.cache.Identity(token)
	if err != nil {
		v.logger.Warn("Access cache unreadable", slog.Any("error", err))
		cached = ""
	}

	decision, err := v.client.Decide(ctx, token, handler.DecideRequest{
		Fingerprint:    v.fingerprint(ctx),
		CachedIdentity: cached,
	})
	if err != nil {
		return nil, err
	}

	if decision.ClearCache {
		v.updateCache(func() error { return v.cache.Forget(token) })
	}
	if decision.State == usecase.StateGranted && decision.CacheIdentity != "" {
		v.updateCache(func() error { return v.cache.Remember(token, decision.CacheIdentity) })
	}

	return decision, nil
}

// Submit sends an identity typed in by the guest and caches it on a grant.
func (v *Visitor) Submit(ctx context.Context, token, identity string) (*handler.SubmitIdentityResponse, error) {
	result, err := v.client.SubmitIdentity(ctx, token, handler.SubmitIdentityRequest{
		Identity:    identity,
		Fingerprint: v.fingerprint(ctx),
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == usecase.OutcomeGranted && result.CacheIdentity != "" {
		v.updateCache(func() error { return v.cache.Remember(token, result.CacheIdentity) })
	}

	return result, nil
}

// fingerprint degrades to "" so the server treats the device as unknown.
func (v *Visitor) fingerprint(ctx context.Context) string {
	fp, err := v.fingerprinter.Fingerprint(ctx)
	if err != nil {
		v.logger.Debug("Fingerprint unavailable", slog.Any("error", err))

		return ""
	}

	return fp
}

func (v *Visitor) updateCache(fn func() error) {
	if err := fn(); err != nil {
		v.logger.Warn("Access cache not updated", slog.Any("error", err))
	}
}

// AdminClient wraps the host routes. Login stores the session token used by
// the other calls.
type AdminClient struct {
	client *Client
	token  string
}

// NewAdminClient wraps client with an admin JWT; token may be empty until Login.
func NewAdminClient(client *Client, token string) *AdminClient {
	return &AdminClient{client: client, token: token}
}

func (a *AdminClient) Token() string {
	return a.token
}

// Login exchanges credentials for an admin JWT and keeps it for later calls.
func (a *AdminClient) Login(ctx context.Context, username, password string) (*handler.LoginResponse, error) {
	var out handler.LoginResponse
	err := a.client.call(ctx, http.MethodPost, "/admin/login", "", handler.LoginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	a.token = out.Token

	return &out, nil
}

func guestPath(guestID uuid.UUID, suffix string) string {
	return "/admin/guests/" + guestID.String() + suffix
}

func (a *AdminClient) GetGuest(ctx context.Context, guestID uuid.UUID) (*handler.GuestDetailResponse, error) {
	var out handler.GuestDetailResponse
	if err := a.client.call(ctx, http.MethodGet, guestPath(guestID, ""), a.token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *AdminClient) RegenerateToken(ctx context.Context, guestID uuid.UUID) (*handler.RegenerateTokenResponse, error) {
	var out handler.RegenerateTokenResponse
	if err := a.client.call(ctx, http.MethodPost, guestPath(guestID, "/token"), a.token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *AdminClient) ClearDevices(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var out struct {
		ClearedDevices int64 `json:"clearedDevices"`
	}
	if err := a.client.call(ctx, http.MethodDelete, guestPath(guestID, "/devices"), a.token, nil, &out); err != nil {
		return 0, err
	}

	return out.ClearedDevices, nil
}

func (a *AdminClient) SetQuota(ctx context.Context, guestID uuid.UUID, maxDevices int) (*handler.GuestDetailResponse, error) {
	var out handler.GuestDetailResponse
	err := a.client.call(ctx, http.MethodPut, guestPath(guestID, "/quota"), a.token, handler.SetQuotaRequest{
		MaxDevicesAllowed: maxDevices,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// InvitationQR returns the PNG bytes of the invitation QR code.
func (a *AdminClient) InvitationQR(ctx context.Context, guestID uuid.UUID) ([]byte, error) {
	req, err := a.client.newRequest(ctx, http.MethodGet, guestPath(guestID, "/qr"), a.token, nil)
	if err != nil {
		return nil, err
	}

	return a.client.send(req)
}

func (a *AdminClient) ListEvents(ctx context.Context, guestID uuid.UUID, limit int) ([]*entity.AccessEvent, error) {
	path := guestPath(guestID, "/events")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var out []*entity.AccessEvent
	if err := a.client.call(ctx, http.MethodGet, path, a.token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
