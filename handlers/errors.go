package handlers

import (
	"MediCare/middlewares"
	"MediCare/services"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidSlot),
		errors.Is(err, services.ErrInvalidType),
		errors.Is(err, services.ErrInvalidSort),
		errors.Is(err, services.ErrInvalidPage),
		errors.Is(err, services.ErrUnknownStep),
		errors.Is(err, services.ErrUnknownBloodType),
		errors.Is(err, services.ErrInvalidOption),
		errors.Is(err, services.ErrEmptyAnswer),
		errors.Is(err, services.ErrInvalidResetCode):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, services.ErrDoctorNotFound),
		errors.Is(err, services.ErrAppointmentNotFound),
		errors.Is(err, services.ErrConsultationNotFound),
		errors.Is(err, services.ErrBloodBankNotFound),
		errors.Is(err, services.ErrLabCenterNotFound),
		errors.Is(err, services.ErrChatStepNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrBookingInProgress),
		errors.Is(err, services.ErrDuplicateBooking),
		errors.Is(err, services.ErrConsultationState),
		errors.Is(err, services.ErrConversationEnd):
		return http.StatusConflict
	case errors.Is(err, services.ErrSignInUnsupported),
		errors.Is(err, services.ErrUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": message}. Validation failures also
// carry the per-field messages.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middlewares.HttpError(c, "Internal server error", status, err)
		return
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(status, gin.H{"error": "Validation failed", "fields": verr.Err})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireSession returns the caller's session. Routes using it sit behind
// the session middleware, so a miss is a wiring bug.
func requireSession(c *gin.Context) (services.Session, bool) {
	session, ok := middlewares.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return services.Session{}, false
	}
	return session, true
}
