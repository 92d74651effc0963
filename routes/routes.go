package routes

import (
	"MediCare/config"
	"MediCare/controllers"
	"MediCare/handlers"
	"MediCare/middlewares"
	"MediCare/services"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Auth          services.AuthProvider
	Registration  *services.RegistrationService
	Patients      *services.PatientService
	Doctors       *services.DoctorService
	Booking       *services.BookingService
	Consultations *services.ConsultationService
	Directory     *services.DirectoryService
	Content       *services.ContentService
	Export        *services.ExportService
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, svc Services, health *handlers.HealthHandler) http.Handler {
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestIDMiddleware())
	router.Use(middlewares.LoggingMiddleware())
	router.Use(middlewares.SecurityHeaders())
	router.Use(middlewares.CorsMiddleware(config.CORSOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
	}))

	sessionAuth := middlewares.SessionAuthMiddleware(svc.Auth)

	authController := controllers.NewAuthController(
		handlers.NewAuthHandler(svc.Auth, svc.Registration, svc.Patients),
		sessionAuth,
	)

	// Health checks and mailed links do not carry the API key
	controllers.SetupRootRoute(router, health)
	authController.RegisterLinkRoutes(router)

	api := router.Group("/", middlewares.ValidateAPIKey(config.GetAPIKey()))
	authController.RegisterRoutes(api)
	controllers.SetupPatientRoutes(api, sessionAuth, controllers.PatientHandlers{
		Patient:      handlers.NewPatientHandler(svc.Patients),
		Doctor:       handlers.NewDoctorHandler(svc.Doctors, svc.Booking),
		Appointment:  handlers.NewAppointmentHandler(svc.Booking, svc.Export),
		Consultation: handlers.NewConsultationHandler(svc.Consultations),
		Directory:    handlers.NewDirectoryHandler(svc.Directory),
		Content:      handlers.NewContentHandler(svc.Content),
	})

	return router
}
