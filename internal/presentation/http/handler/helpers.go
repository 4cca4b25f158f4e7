package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	return roles.([]string)
}

// HasRole checks if the authenticated user carries the given role
func HasRole(c *gin.Context, name string) bool {
	for _, role := range GetUserRoles(c) {
		if role == name {
			return true
		}
	}
	return false
}

// IsStaff checks if the user may operate staff endpoints
func IsStaff(c *gin.Context) bool {
	return HasRole(c, "staff") || HasRole(c, "admin") || HasRole(c, "super-admin")
}

// IsAdmin checks if the user has an admin role
func IsAdmin(c *gin.Context) bool {
	return HasRole(c, "admin") || HasRole(c, "super-admin")
}

// toCents converts a decimal currency amount to cents
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// toCentsPtr converts an optional decimal amount to cents
func toCentsPtr(amount *float64) *int64 {
	if amount == nil {
		return nil
	}
	v := toCents(*amount)
	return &v
}
