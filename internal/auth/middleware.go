package auth

import (
	"strings"

	"ads-billing/internal/apierrors"
	"ads-billing/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxKeyUserID = "User-ID"
	ctxKeyRole   = "Role"
)

// Middleware rejects requests without a valid bearer token and stores the
// caller's id and role on the gin context.
func Middleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Authorization token is missing or invalid")
			c.Abort()
			return
		}

		claims, err := v.Validate(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		userID := uuid.MustParse(claims.Subject)
		c.Set(ctxKeyUserID, userID)
		c.Set(ctxKeyRole, claims.Role)
		c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
			observability.Field{Key: "user_id", Value: userID.String()},
			observability.Field{Key: "role", Value: string(claims.Role)},
		))
		c.Next()
	}
}

// RequireRole lets only callers with role through. It must run after
// Middleware.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get(ctxKeyRole); got != role {
			apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
