package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// HttpError logs err under the request id and writes {"error": message}.
// The underlying error never reaches the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v request_id=%s", status, message, err, GetRequestID(c.Request.Context()))
	c.JSON(status, gin.H{"error": message})
}
