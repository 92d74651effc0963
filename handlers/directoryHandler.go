package handlers

import (
	"MediCare/repositories"
	"MediCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	service *services.DirectoryService
}

func NewDirectoryHandler(service *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListBloodBanks handles GET /blood-banks?bloodType=&location=
func (h *DirectoryHandler) ListBloodBanks(c *gin.Context) {
	filter := repositories.BloodBankFilter{
		BloodType: c.Query("bloodType"),
		Location:  c.Query("location"),
	}
	listing, err := h.service.SearchBloodBanks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *DirectoryHandler) GetBloodBank(c *gin.Context) {
	bank, err := h.service.GetBloodBank(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

// ListLabCenters handles GET /lab-centers?q=&location=&service=
func (h *DirectoryHandler) ListLabCenters(c *gin.Context) {
	filter := repositories.LabCenterFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Service:  c.Query("service"),
	}
	listing, err := h.service.SearchLabCenters(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *DirectoryHandler) GetLabCenter(c *gin.Context) {
	lab, err := h.service.GetLabCenter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lab)
}

func (h *DirectoryHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Facets(c.Request.Context()))
}
