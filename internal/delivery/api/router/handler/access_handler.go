package handler

import (
	"log/slog"
	"net/http"

	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/response"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessHandlerParams holds dependencies for AccessHandler, injected by Fx.
type AccessHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AccessHandler serves the guest side of the invitation flow.
type AccessHandler struct {
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler
func NewAccessHandler(params AccessHandlerParams) *AccessHandler {
	return &AccessHandler{
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// DecideRequest is one visit. An empty fingerprint means the client could not compute one.
type DecideRequest struct {
	Fingerprint    string `json:"fingerprint" validate:"max=128"`
	CachedIdentity string `json:"cachedIdentity" validate:"max=254"`
}

// SubmitIdentityRequest carries the phone number or email typed in by the guest.
type SubmitIdentityRequest struct {
	Identity    string `json:"identity" validate:"required,max=254"`
	Fingerprint string `json:"fingerprint" validate:"max=128"`
}

// DecisionResponse tells the client what to render and how to update its cache.
type DecisionResponse struct {
	State         usecase.AccessState      `json:"state"`
	Reason        string                   `json:"reason,omitempty"`
	ClearCache    bool                     `json:"clearCache"`
	CacheIdentity string                   `json:"cacheIdentity,omitempty"`
	Guest         *usecase.GuestProjection `json:"guest,omitempty"`
	Grant         *usecase.Grant           `json:"grant,omitempty"`
}

// SubmitIdentityResponse is the typed outcome of an identity submission.
type SubmitIdentityResponse struct {
	Outcome       usecase.SubmitOutcome    `json:"outcome"`
	Restriction   string                   `json:"restriction,omitempty"`
	CacheIdentity string                   `json:"cacheIdentity,omitempty"`
	Guest         *usecase.GuestProjection `json:"guest,omitempty"`
	Grant         *usecase.Grant           `json:"grant,omitempty"`
}

// VerifyToken resolves the invitation token in the path.
func (h *AccessHandler) VerifyToken(c echo.Context) error {
	projection, err := h.accessUC.Verify(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, projection)
}

// Decide runs one visit through the access state machine.
func (h *AccessHandler) Decide(c echo.Context) error {
	var req DecideRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid decide input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	decision, err := h.accessUC.Decide(c.Request().Context(), usecase.DecideInput{
		Token:          c.Param("token"),
		Fingerprint:    req.Fingerprint,
		CachedIdentity: req.CachedIdentity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DecisionResponse{
		State:         decision.State,
		Reason:        decision.Reason,
		ClearCache:    decision.ClearCache,
		CacheIdentity: decision.CacheIdentity,
		Guest:         decision.Guest,
		Grant:         decision.Grant,
	})
}

// SubmitIdentity checks an identity and registers the device on a match.
// Mismatch and quota outcomes are results, not errors, and answer 200.
func (h *AccessHandler) SubmitIdentity(c echo.Context) error {
	var req SubmitIdentityRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.accessUC.Submit(c.Request().Context(), usecase.SubmitInput{
		Token:       c.Param("token"),
		Identity:    req.Identity,
		Fingerprint: req.Fingerprint,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SubmitIdentityResponse{
		Outcome:       result.Outcome,
		Restriction:   result.Restriction,
		CacheIdentity: result.CacheIdentity,
		Guest:         result.Guest,
		Grant:         result.Grant,
	})
}

// Invitation returns the guest projection for a grant presented as a Bearer token.
func (h *AccessHandler) Invitation(c echo.Context) error {
	grant, ok := middleware.BearerToken(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrGrantInvalid.ErrorCode(), domainerrors.ErrGrantInvalid.Message())
	}

	projection, err := h.accessUC.Invitation(c.Request().Context(), grant)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, projection)
}
