package handlers

import (
	"MediCare/services"
	"MediCare/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth         services.AuthProvider
	registration *services.RegistrationService
	patients     *services.PatientService
}

func NewAuthHandler(auth services.AuthProvider, registration *services.RegistrationService, patients *services.PatientService) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		registration: registration,
		patients:     patients,
	}
}

// ValidateRegistrationStep handles POST /auth/register/validate/:step so the
// form can gate each page before moving on.
func (h *AuthHandler) ValidateRegistrationStep(c *gin.Context) {
	var req services.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.ValidateStep(c.Param("step")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Register handles new patient registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	patient, err := h.registration.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your e-mail to verify your account.",
		"patient": patient,
	})
}

// SignIn authenticates the user and returns the session token
func (h *AuthHandler) SignIn(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SetSessionCookie(c, session.Token, session.ExpiresAt)
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	utils.ClearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) SendPasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if err := h.auth.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset instructions sent to your e-mail"})
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	confirmer, ok := h.auth.(services.PasswordResetConfirmer)
	if !ok {
		respondError(c, services.ErrUnsupported)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Code     string `json:"code"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := confirmer.ConfirmPasswordReset(c.Request.Context(), req.Email, req.Code, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// VerifyEmail handles the link mailed at sign-up.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	verifier, ok := h.auth.(services.EmailVerifier)
	if !ok {
		respondError(c, services.ErrUnsupported)
		return
	}
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}
	if err := verifier.VerifyEmail(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "E-mail verified"})
}

// GetSession returns the signed-in user and their profile.
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	profile, err := h.patients.GetProfile(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "profile": profile})
}
