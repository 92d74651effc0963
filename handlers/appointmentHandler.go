package handlers

import (
	"MediCare/services"
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AppointmentHandler struct {
	booking *services.BookingService
	export  *services.ExportService
}

func NewAppointmentHandler(booking *services.BookingService, export *services.ExportService) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, export: export}
}

// Quote handles POST /appointments/quote, the review step before payment.
func (h *AppointmentHandler) Quote(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	quote, err := h.booking.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	confirmation, err := h.booking.Book(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// ListAppointments handles GET /appointments?limit=5
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	appointments, err := h.booking.ListAppointments(c.Request.Context(), session.UID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	appointment, err := h.booking.GetAppointment(c.Request.Context(), session.UID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// ExportAppointments handles GET /appointments/export as an .xlsx download.
func (h *AppointmentHandler) ExportAppointments(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.export.WriteAppointments(c.Request.Context(), session.UID, &buf); err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("appointments-%s.xlsx", h.booking.Now().Format(services.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
