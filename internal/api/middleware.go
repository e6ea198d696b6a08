package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/staff"
)

// requireCapability looks up the authenticated staff member and aborts unless
// check passes. It MUST be used after auth.AuthRequired middleware. This is
// an advisory gate; authoritative enforcement lives in the store's own access
// control.
func requireCapability(staffService staff.Service, check func(*staff.Staff) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := auth.GetStaffID(c)
		if staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		m, err := staffService.GetByID(c.Request.Context(), staffID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "staff member not found"})
			return
		}

		if !m.IsActive || !check(m) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}

		c.Next()
	}
}

// RequireManageAppointments gates appointment and availability mutations.
func RequireManageAppointments(staffService staff.Service) gin.HandlerFunc {
	return requireCapability(
		staffService,
		(*staff.Staff).CanManageAppointments,
		"forbidden: appointment management access required",
	)
}

// RequireDeleteAppointments gates hard deletion of appointments.
func RequireDeleteAppointments(staffService staff.Service) gin.HandlerFunc {
	return requireCapability(
		staffService,
		(*staff.Staff).CanDeleteAppointments,
		"forbidden: appointment deletion access required",
	)
}

// RequireAdmin gates staff account management.
func RequireAdmin(staffService staff.Service) gin.HandlerFunc {
	return requireCapability(
		staffService,
		func(m *staff.Staff) bool { return m.Role == staff.RoleAdmin },
		"forbidden: admin access required",
	)
}
