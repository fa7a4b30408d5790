// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/router/handler"
	"guestpass/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccessHandler       *handler.AccessHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accessHandler       *handler.AccessHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accessHandler:       params.AccessHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Guest side, authenticated by the invitation token itself
	accessGroup := apiV1.Group("/access/:token")
	{
		accessGroup.GET("", r.accessHandler.VerifyToken)
		accessGroup.POST("/decide", r.accessHandler.Decide)
		accessGroup.POST("/identity", r.accessHandler.SubmitIdentity, r.rateLimitMiddleware.LimitByToken)
	}

	// Invitation view, authenticated by a grant
	apiV1.GET("/invitation", r.accessHandler.Invitation)

	e.POST("/admin/login", r.adminHandler.Login, r.rateLimitMiddleware.LimitLogin)

	guestsGroup := e.Group("/admin/guests")
	guestsGroup.Use(r.authMiddleware.Authenticate)
	guestsGroup.Use(r.authMiddleware.RequireRole(entity.RoleViewer))
	manage := r.authMiddleware.RequireRole(entity.RoleAdmin)
	{
		guestsGroup.GET("/:id", r.adminHandler.GetGuest)
		guestsGroup.GET("/:id/qr", r.adminHandler.InvitationQR)
		guestsGroup.GET("/:id/events", r.adminHandler.ListEvents)
		guestsGroup.POST("/:id/token", r.adminHandler.RegenerateToken, manage)
		guestsGroup.DELETE("/:id/devices", r.adminHandler.ClearDevices, manage)
		guestsGroup.PUT("/:id/quota", r.adminHandler.SetQuota, manage)
	}
}
