package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/constants"
)

// currentUserID returns the authenticated user's ID from the request
// context. The auth middleware sets it for every protected route.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func currentUserRole(c *gin.Context) authorization.UserRole {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	roleStr, ok := value.(string)
	if !ok {
		return ""
	}
	return authorization.ParseUserRole(roleStr)
}

// currentCondominiumID returns the tenant the caller belongs to. Platform
// accounts (super admins, resellers) carry none.
func currentCondominiumID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyCondominiumID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
