package controllers

import (
	"MediCare/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": "MediCare API", "status": "ok"})
}

// SetupRootRoute sets up the unauthenticated root and health routes
func SetupRootRoute(router gin.IRouter, health *handlers.HealthHandler) {
	router.GET("/", rootHandler)
	router.GET("/health/live", health.Liveness)
	router.GET("/health/ready", health.Readiness)
}
