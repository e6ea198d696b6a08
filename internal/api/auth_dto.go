package api

import (
	"time"

	"github.com/altorracars/dealership-backend/internal/staff"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Staff       StaffResponse `json:"staff"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"required,oneof=admin manager advisor"`
}

type RegisterResponse struct {
	Staff StaffResponse `json:"staff"`
}

// ListStaffRequest defines query parameters for listing staff accounts.
type ListStaffRequest struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin manager advisor"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type MeResponse struct {
	Staff StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	DisplayName           *string    `json:"display_name,omitempty"`
	Role                  string     `json:"role"`
	IsActive              bool       `json:"is_active"`
	CanManageAppointments bool       `json:"can_manage_appointments"`
	CanDeleteAppointments bool       `json:"can_delete_appointments"`
	CreatedAt             time.Time  `json:"created_at"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`
}

func NewStaffResponse(m *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:                    m.ID,
		Email:                 m.Email,
		DisplayName:           m.DisplayName,
		Role:                  string(m.Role),
		IsActive:              m.IsActive,
		CanManageAppointments: m.CanManageAppointments(),
		CanDeleteAppointments: m.CanDeleteAppointments(),
		CreatedAt:             m.CreatedAt,
		LastLoginAt:           m.LastLoginAt,
	}
}
