package controllers

import (
	"MediCare/handlers"

	"github.com/gin-gonic/gin"
)

// PatientHandlers groups the handlers behind the patient-facing routes.
type PatientHandlers struct {
	Patient      *handlers.PatientHandler
	Doctor       *handlers.DoctorHandler
	Appointment  *handlers.AppointmentHandler
	Consultation *handlers.ConsultationHandler
	Directory    *handlers.DirectoryHandler
	Content      *handlers.ContentHandler
}

func SetupPatientRoutes(router gin.IRouter, sessionAuth gin.HandlerFunc, h PatientHandlers) {
	// Catalog and content are public
	router.GET("/doctors", h.Doctor.ListDoctors)
	router.GET("/doctors/specialties", h.Doctor.GetSpecialties)
	router.GET("/doctors/:id", h.Doctor.GetDoctorByID)
	router.GET("/doctors/:id/slots", h.Doctor.GetSlots)

	router.GET("/blood-banks", h.Directory.ListBloodBanks)
	router.GET("/blood-banks/:id", h.Directory.GetBloodBank)
	router.GET("/lab-centers", h.Directory.ListLabCenters)
	router.GET("/lab-centers/:id", h.Directory.GetLabCenter)
	router.GET("/directory/facets", h.Directory.GetFacets)

	router.GET("/blog/posts", h.Content.ListBlogPosts)
	router.GET("/blog/categories", h.Content.ListBlogCategories)
	router.GET("/blog/recent", h.Content.ListRecentPosts)
	router.GET("/resources", h.Content.ListResources)
	router.GET("/faqs", h.Content.ListFAQs)
	router.GET("/chatbot/steps/:id", h.Content.GetChatStep)
	router.POST("/chatbot/steps/:id/answer", h.Content.AnswerChatStep)

	router.POST("/appointments/quote", h.Appointment.Quote)

	// Everything tied to a patient requires a session
	protected := router.Group("/", sessionAuth)
	{
		protected.GET("/profile", h.Patient.GetProfile)
		protected.PUT("/profile", h.Patient.UpdateProfile)

		protected.POST("/appointments", h.Appointment.CreateAppointment)
		protected.GET("/appointments", h.Appointment.ListAppointments)
		protected.GET("/appointments/export", h.Appointment.ExportAppointments)
		protected.GET("/appointments/:id", h.Appointment.GetAppointmentByID)

		protected.POST("/consultations", h.Consultation.StartConsultation)
		protected.POST("/consultations/:id/connect", h.Consultation.ConnectConsultation)
		protected.DELETE("/consultations/:id", h.Consultation.EndConsultation)
	}
}
