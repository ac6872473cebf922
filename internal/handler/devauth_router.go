package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loginflow/internal/devauth"
	"loginflow/internal/handler/middleware"
)

// NewDevAuthRouter serves the development auth backend.
func NewDevAuthRouter(engine *gin.Engine, logger *middleware.Logger, h *devauth.Handler, authMiddleware *middleware.AuthMiddleware) {
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware(healthPath))

	engine.GET(healthPath, healthCheck)

	authGroup := engine.Group("/auth")
	addRoutes(authGroup, []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Login},
		{Method: http.MethodGet, Path: "/me", Handler: h.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
	})
}
