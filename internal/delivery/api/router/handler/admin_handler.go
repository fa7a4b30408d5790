package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/response"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves host-side guest management.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// LoginRequest represents the host login body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the admin session token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SetQuotaRequest represents the quota update body
type SetQuotaRequest struct {
	MaxDevicesAllowed int `json:"maxDevicesAllowed" validate:"required,min=1"`
}

// GuestDetailResponse is a guest with its devices and invitation link
type GuestDetailResponse struct {
	Guest          *entity.Guest         `json:"guest"`
	Devices        []*entity.GuestDevice `json:"devices"`
	InvitationLink string                `json:"invitationLink"`
}

// RegenerateTokenResponse carries the replacement invitation link
type RegenerateTokenResponse struct {
	Token          string `json:"token"`
	InvitationLink string `json:"invitationLink"`
	ClearedDevices int64  `json:"clearedDevices"`
}

// Login exchanges host credentials for an admin token
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: out.Token, ExpiresAt: out.ExpiresAt})
}

// GetGuest returns the guest detail
func (h *AdminHandler) GetGuest(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	detail, err := h.adminUC.GetGuest(c.Request().Context(), guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGuestDetailResponse(detail))
}

// RegenerateToken replaces the invitation token and clears the devices
func (h *AdminHandler) RegenerateToken(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	out, err := h.adminUC.RegenerateToken(c.Request().Context(), guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Invitation token regenerated by admin", guestID)

	return response.Success(c, http.StatusOK, RegenerateTokenResponse{
		Token:          out.Token,
		InvitationLink: out.InvitationLink,
		ClearedDevices: out.ClearedDevices,
	})
}

// ClearDevices removes every registered device of the guest
func (h *AdminHandler) ClearDevices(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	cleared, err := h.adminUC.ClearDevices(c.Request().Context(), guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Devices cleared by admin", guestID)

	return response.Success(c, http.StatusOK, map[string]int64{"clearedDevices": cleared})
}

// SetQuota changes the device quota of the guest
func (h *AdminHandler) SetQuota(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	var req SetQuotaRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quota input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.adminUC.SetQuota(c.Request().Context(), guestID, req.MaxDevicesAllowed)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGuestDetailResponse(detail))
}

// InvitationQR renders the invitation link as a PNG
func (h *AdminHandler) InvitationQR(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	png, err := h.adminUC.InvitationQR(c.Request().Context(), guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListEvents returns the access audit trail of the guest
func (h *AdminHandler) ListEvents(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid guest ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
	}

	events, err := h.adminUC.ListEvents(c.Request().Context(), guestID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

func (h *AdminHandler) audit(c echo.Context, msg string, guestID uuid.UUID) {
	admin, _ := middleware.GetAdmin(c)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info(msg,
		slog.String("admin", admin),
		slog.String("guest_id", guestID.String()),
	)
}

func toGuestDetailResponse(detail *usecase.GuestDetail) GuestDetailResponse {
	devices := detail.Devices
	if devices == nil {
		devices = []*entity.GuestDevice{}
	}

	return GuestDetailResponse{
		Guest:          detail.Guest,
		Devices:        devices,
		InvitationLink: detail.InvitationLink,
	}
}
