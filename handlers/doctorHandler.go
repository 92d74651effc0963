package handlers

import (
	"MediCare/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
	booking *services.BookingService
}

func NewDoctorHandler(service *services.DoctorService, booking *services.BookingService) *DoctorHandler {
	return &DoctorHandler{service: service, booking: booking}
}

func optionalFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}

func optionalInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return v, true
}

// ListDoctors handles GET /doctors?specialty=&minPrice=&maxPrice=&minRating=&q=&sort=&limit=&offset=
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	var q services.DoctorQuery
	q.Specialty = c.Query("specialty")
	q.Query = c.Query("q")
	q.Sort = services.SortKey(c.Query("sort"))

	var ok bool
	if q.MinPrice, ok = optionalFloat(c, "minPrice"); !ok {
		return
	}
	if q.MaxPrice, ok = optionalFloat(c, "maxPrice"); !ok {
		return
	}
	minRating, ok := optionalFloat(c, "minRating")
	if !ok {
		return
	}
	if minRating != nil {
		q.MinRating = *minRating
	}
	if q.Limit, ok = optionalInt(c, "limit"); !ok {
		return
	}
	if q.Offset, ok = optionalInt(c, "offset"); !ok {
		return
	}

	page, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}
	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.service.Specialties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// GetSlots handles GET /doctors/:id/slots?date=YYYY-MM-DD
func (h *DoctorHandler) GetSlots(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}
	date := c.Query("date")
	slots, err := h.booking.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": id, "date": date, "slots": slots})
}
