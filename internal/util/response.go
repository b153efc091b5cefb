package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes the uniform failure body and logs the message. Every failing
// endpoint responds with {"error": "..."} and nothing else.
func Error(c *gin.Context, code int, err interface{}) {
	msg := ""
	switch e := err.(type) {
	case string:
		msg = e
	case error:
		msg = e.Error()
	default:
		msg = "Internal server error"
	}

	zap.S().Errorf("API error (%d): %s", code, msg)

	c.JSON(code, gin.H{"error": msg})
}
