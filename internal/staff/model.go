package staff

import (
	"net/http"
	"time"

	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "staff member not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactive           = apperror.New(http.StatusForbidden, "staff account is inactive")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid staff role")
)

// Role is the closed set of back-office roles.
type Role string

const (
	// RoleAdmin can manage and delete appointments and register staff.
	RoleAdmin Role = "admin"
	// RoleManager can manage appointments and availability.
	RoleManager Role = "manager"
	// RoleAdvisor has read-only access to the back-office.
	RoleAdvisor Role = "advisor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAdvisor:
		return true
	}
	return false
}

// Staff represents a back-office account.
type Staff struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// CanManageAppointments reports whether the account may create appointments,
// change their status and edit availability.
func (s *Staff) CanManageAppointments() bool {
	return s.Role == RoleAdmin || s.Role == RoleManager
}

// CanDeleteAppointments reports whether the account may hard-delete appointments.
func (s *Staff) CanDeleteAppointments() bool {
	return s.Role == RoleAdmin
}

// ActorName is the name stamped onto records touched by this account.
func (s *Staff) ActorName() string {
	if s.DisplayName != nil && *s.DisplayName != "" {
		return *s.DisplayName
	}
	return s.Email
}

// Filter defines filter options for listing staff accounts.
type Filter struct {
	Role     string
	IsActive *bool // pointer to distinguish between false and not set

	Page     int
	PageSize int
}
