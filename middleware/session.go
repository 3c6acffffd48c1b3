package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the per-tab session id that scopes the booking flow.
const SessionHeader = "X-Session-ID"

// sessionKey is the gin context key the session id is stored under.
const sessionKey = "sessionID"

// SessionMiddleware reads the session id from the request header, minting a
// new one for first-time callers, and echoes it back so the client can keep
// threading it. All session-scoped record keys derive from this id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
