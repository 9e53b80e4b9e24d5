package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reelvault/reelvault/internal/server/auth"
)

const (
	// identityKey is the gin context key holding the resolved *auth.Identity.
	identityKey = "httpapi.identity"

	requestIDHeader = "X-Request-Id"
	// sessionTokenHeader carries a re-issued token back to the client.
	sessionTokenHeader = "X-Session-Token"
)

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("httpapi.request_id", id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"request_id", c.GetString("httpapi.request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// resolveSession extracts a bearer token, resolves it, and stores the
// identity for downstream handlers. An invalid or expired token is treated
// as "no session", never as an error. A token past the refresh interval is
// re-issued and returned in the X-Session-Token response header.
func (s *Server) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		identity, err := s.sessions.Resolve(token)
		if err != nil {
			c.Next()
			return
		}

		if refreshed, err := s.sessions.RefreshIfNeeded(token); err == nil && refreshed != token {
			c.Header(sessionTokenHeader, refreshed)
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// requireIdentity guards protected routes.
func (s *Server) requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentIdentity(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func currentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
