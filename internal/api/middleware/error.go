package middleware

import (
	"log"
	"net/http"

	"powerrocks/internal/alexa"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics. The voice platform treats any
// non-200 as a hard skill failure, so a panic on the skill route is
// answered with a spoken apology that keeps the session open; other
// routes get a plain JSON error.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[API] panic recovered: %v", recovered)
		if c.FullPath() == "/api/v1/skill" {
			c.JSON(http.StatusOK, alexa.Tell("Desculpe, algo deu errado. Pode repetir?"))
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				},
			})
		}
		c.Abort()
	})
}
