package handlers

import (
	"MediCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service *services.ConsultationService
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

func (h *ConsultationHandler) StartConsultation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req struct {
		DoctorID int `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId is required"})
		return
	}
	consultation, err := h.service.Start(c.Request.Context(), session, req.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (h *ConsultationHandler) ConnectConsultation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	consultation, err := h.service.Connect(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) EndConsultation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	consultation, err := h.service.End(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}
