package controllers

import (
	"MediCare/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler     *handlers.AuthHandler
	SessionAuth gin.HandlerFunc
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler, sessionAuth gin.HandlerFunc) *AuthController {
	return &AuthController{
		Handler:     authHandler,
		SessionAuth: sessionAuth,
	}
}

// RegisterRoutes initializes all authentication routes on the API group
func (ac *AuthController) RegisterRoutes(router gin.IRouter) {
	// Public routes: No authentication required
	router.POST("/auth/register/validate/:step", ac.Handler.ValidateRegistrationStep)
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/sign-in", ac.Handler.SignIn)
	router.POST("/auth/reset-password", ac.Handler.SendPasswordReset)
	router.POST("/auth/reset-password/confirm", ac.Handler.ConfirmPasswordReset)

	// Protected routes: Requires a valid session
	authGroup := router.Group("/auth", ac.SessionAuth)
	{
		authGroup.POST("/sign-out", ac.Handler.SignOut)
		authGroup.GET("/session", ac.Handler.GetSession)
	}
}

// RegisterLinkRoutes mounts the routes opened from e-mailed links, which
// cannot carry the API key.
func (ac *AuthController) RegisterLinkRoutes(router gin.IRouter) {
	router.GET("/auth/verify-email", ac.Handler.VerifyEmail)
}
