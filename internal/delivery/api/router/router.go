// Package router contains routing and server setup for the REST API.
package router

import (
	"chorechart/internal/delivery/api/middleware"
	"chorechart/internal/delivery/api/router/handler"
	"chorechart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ProfileHandler    *handler.ProfileHandler
	ChoreHandler      *handler.ChoreHandler
	RewardHandler     *handler.RewardHandler
	RedemptionHandler *handler.RedemptionHandler
	DeviceHandler     *handler.DeviceHandler
	SessionHandler    *handler.SessionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	profileHandler    *handler.ProfileHandler
	choreHandler      *handler.ChoreHandler
	rewardHandler     *handler.RewardHandler
	redemptionHandler *handler.RedemptionHandler
	deviceHandler     *handler.DeviceHandler
	sessionHandler    *handler.SessionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		profileHandler:    params.ProfileHandler,
		choreHandler:      params.ChoreHandler,
		rewardHandler:     params.RewardHandler,
		redemptionHandler: params.RedemptionHandler,
		deviceHandler:     params.DeviceHandler,
		sessionHandler:    params.SessionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token and registration routes
	public := e.Group("/api")
	{
		public.POST("/token", r.accountHandler.Login)
		public.POST("/token/refresh", r.accountHandler.RefreshToken)
		public.POST("/token/logout", r.accountHandler.Logout)
		public.POST("/register", r.accountHandler.Register)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Usecases re-check roles against the stored profile; token roles only gate the review queue.
	profiles := apiV1.Group("/profiles")
	{
		profiles.GET("", r.profileHandler.ListProfiles)
		profiles.POST("", r.profileHandler.CreateKid)
		profiles.GET("/me", r.profileHandler.GetMyProfile)
		profiles.GET("/:id", r.profileHandler.GetProfile)
		profiles.PATCH("/:id", r.profileHandler.RelinkProfile)
		profiles.DELETE("/:id", r.profileHandler.DeleteKid)
		profiles.POST("/:id/log_behavior", r.profileHandler.LogBehavior)
		profiles.GET("/:id/activity", r.profileHandler.GetActivity)
	}

	chores := apiV1.Group("/chores")
	{
		chores.GET("", r.choreHandler.ListChores)
		chores.POST("", r.choreHandler.CreateChore)
		chores.GET("/:id", r.choreHandler.GetChore)
		chores.PUT("/:id", r.choreHandler.UpdateChore)
		chores.DELETE("/:id", r.choreHandler.DeleteChore)
		chores.POST("/:id/complete", r.choreHandler.CompleteChore)
	}

	rewards := apiV1.Group("/rewards")
	{
		rewards.GET("", r.rewardHandler.ListRewards)
		rewards.POST("", r.rewardHandler.CreateReward)
		rewards.GET("/:id", r.rewardHandler.GetReward)
		rewards.PUT("/:id", r.rewardHandler.UpdateReward)
		rewards.DELETE("/:id", r.rewardHandler.DeleteReward)
		rewards.POST("/:id/redeem", r.rewardHandler.RedeemReward)
	}

	redemptions := apiV1.Group("/redemptions")
	{
		redemptions.GET("", r.redemptionHandler.ListRedemptions)
		redemptions.GET("/:id", r.redemptionHandler.GetRedemption)
		redemptions.POST("/:id/process", r.redemptionHandler.ProcessRedemption, r.authMiddleware.RequireRole(entity.RoleParent))
		redemptions.GET("/:id/voucher", r.redemptionHandler.GetVoucher)
	}

	// Device management routes
	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.GetUserDevices)
		devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	sessions := apiV1.Group("/sessions")
	{
		sessions.GET("", r.sessionHandler.ListSessions)
		sessions.DELETE("/:id", r.sessionHandler.RevokeSession)
		sessions.POST("/logout-all", r.sessionHandler.RevokeAllSessions)
	}
}
