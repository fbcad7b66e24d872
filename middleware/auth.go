package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bistroboss/models"
	"bistroboss/services"
	"bistroboss/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "userId"
	CtxUID    = "uid"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth verifies the bearer credential and resolves the persisted user. Role
// is taken from the store, not the token, so a promotion is visible on the
// very next request.
func Auth(secret []byte, users services.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "code": "unauthorized", "message": "Access denied, token required",
			})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := token.Parse(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "code": "unauthorized", "message": "Invalid or expired token",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByUID(ctx, claims.UID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false, "code": "internal_error", "message": "Something went wrong",
			})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "code": "unauthorized", "message": "User no longer exists",
			})
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUID, user.UID)
		c.Set(CtxEmail, user.Email)
		c.Set(CtxRole, user.Role)
		c.Next()
	}
}

// AdminOnly requires the persisted role resolved by Auth to be admin.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "code": "forbidden", "message": "Access denied, admin only",
			})
			return
		}
		c.Next()
	}
}
