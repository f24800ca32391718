package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// RequireRole rejects requests whose role is not in the allowed set.
func RequireRole(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !allowed[role] {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
