package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ebegrace/zion-academy-api/internal/middleware"
	"github.com/ebegrace/zion-academy-api/internal/models"
)

// claimsFromContext extracts the authenticated user's claims, if present.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
