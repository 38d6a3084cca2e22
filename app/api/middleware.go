package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oddsmith/punt/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	// CallerKey and ScopeKey hold the verified token payload in the gin context.
	CallerKey = "caller"
	ScopeKey  = "scope"
)

// verifyBearer parses and verifies the Authorization header. On failure it
// writes the 401 response, aborts the request, and returns false.
func verifyBearer(c *gin.Context, tokenMaker security.Maker) (*security.Payload, bool) {
	authHeader := c.GetHeader(AuthorizationHeaderKey)
	if authHeader == "" {
		UnauthorizedResponse(c)
		c.Abort()
		return nil, false
	}

	fields := strings.Fields(authHeader)
	if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
		UnauthorizedResponse(c)
		c.Abort()
		return nil, false
	}

	payload, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		UnauthorizedResponse(c)
		c.Abort()
		return nil, false
	}

	return payload, true
}

// BearerAuth verifies the Authorization header and stores the caller identity
// and scope in the request context.
func BearerAuth(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := verifyBearer(c, tokenMaker)
		if !ok {
			return
		}

		c.Set(CallerKey, payload.Subject)
		c.Set(ScopeKey, payload.Scope)
		c.Next()
	}
}

// WriteGuard verifies a bearer token and requires write scope in a single
// middleware, for modules that attach one guard to every mutating route.
func WriteGuard(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := verifyBearer(c, tokenMaker)
		if !ok {
			return
		}

		if payload.Scope != security.TokenScopeWrite {
			ForbiddenResponse(c, "Access Denied: token scope does not permit this operation")
			c.Abort()
			return
		}

		c.Set(CallerKey, payload.Subject)
		c.Set(ScopeKey, payload.Scope)
		c.Next()
	}
}

// RequireScope rejects callers whose token scope does not cover the required
// scope. A write scope also covers read.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopeValue, exists := c.Get(ScopeKey)
		if !exists {
			ForbiddenResponse(c, "Access Denied: scope not found in context")
			c.Abort()
			return
		}

		granted, ok := scopeValue.(string)
		if !ok {
			ForbiddenResponse(c, "Access Denied: invalid scope data in context")
			c.Abort()
			return
		}

		if granted == scope || granted == security.TokenScopeWrite {
			c.Next()
			return
		}

		ForbiddenResponse(c, "Access Denied: token scope does not permit this operation")
		c.Abort()
	}
}
