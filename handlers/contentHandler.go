package handlers

import (
	"MediCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	service *services.ContentService
}

func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.service.BlogPosts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ContentHandler) ListBlogCategories(c *gin.Context) {
	categories, err := h.service.BlogCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ContentHandler) ListRecentPosts(c *gin.Context) {
	recent, err := h.service.RecentPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recent": recent})
}

func (h *ContentHandler) ListResources(c *gin.Context) {
	resources, err := h.service.Resources(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *ContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.service.FAQs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

func (h *ContentHandler) GetChatStep(c *gin.Context) {
	step, err := h.service.ChatStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

// AnswerChatStep handles POST /chatbot/steps/:id/answer {"value": "..."}
func (h *ContentHandler) AnswerChatStep(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	step, err := h.service.Answer(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}
