package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// Context key under which the request id is stored.
const ContextRequestIDKey = "requestID"

// RequestIDMiddleware tags every request with a correlation id, reusing the
// caller's X-Request-Id when present and minting one otherwise. The id is
// echoed on the response so failures can be matched to server logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
