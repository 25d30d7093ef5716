// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"menubuilder/internal/delivery/http/middleware"
	"menubuilder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	MenuHandler    *handler.MenuHandler
	ExportHandler  *handler.ExportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	menuHandler    *handler.MenuHandler
	exportHandler  *handler.ExportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		menuHandler:    params.MenuHandler,
		exportHandler:  params.ExportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public endpoints
	api.GET("/health", handler.HealthCheck)
	api.POST("/register", r.userHandler.Register)
	api.POST("/login", r.userHandler.Login)

	// Everything below requires a valid bearer token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/user", r.userHandler.CurrentUser)
		authed.POST("/logout", r.userHandler.Logout)
		authed.PUT("/profile", r.userHandler.UpdateProfile)

		authed.GET("/menus", r.menuHandler.ListMenus)
		authed.POST("/menus", r.menuHandler.SaveMenu)
		authed.PUT("/menus/:menuId", r.menuHandler.UpdateMenu)
		authed.DELETE("/menus/:menuId", r.menuHandler.DeleteMenu)

		authed.POST("/export", r.exportHandler.ExportDocument)
		authed.GET("/menus/:menuId/export", r.exportHandler.ExportSavedMenu)
	}
}
