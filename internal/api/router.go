package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/appointment"
	apptHttp "github.com/altorracars/dealership-backend/internal/appointment/http"
	"github.com/altorracars/dealership-backend/internal/audit"
	auditHttp "github.com/altorracars/dealership-backend/internal/audit/http"
	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/availability"
	availHttp "github.com/altorracars/dealership-backend/internal/availability/http"
	"github.com/altorracars/dealership-backend/internal/calendar"
	calHttp "github.com/altorracars/dealership-backend/internal/calendar/http"
	"github.com/altorracars/dealership-backend/internal/realtime"
	"github.com/altorracars/dealership-backend/internal/staff"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	StaffService        staff.Service
	AvailabilityService availability.Service
	AppointmentService  appointment.Service
	CalendarService     calendar.Service
	AuditService        audit.Service
	RealtimeHub         *realtime.Hub
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (CORS, Logger,
// Auth) plus the public and staff route groups.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS. The public booking endpoints are consumed by the
	// dealership website, the rest by the back-office SPA.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: validates the staff JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// Capability gates consulted before mutating operations.
	manageMiddleware := RequireManageAppointments(cfg.StaffService)
	deleteMiddleware := RequireDeleteAppointments(cfg.StaffService)
	adminMiddleware := RequireAdmin(cfg.StaffService)

	authHandler := NewAuthHandler(cfg.StaffService, cfg.JWTManager)
	apptHandler := apptHttp.NewHandler(cfg.AppointmentService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	calHandler := calHttp.NewHandler(cfg.CalendarService)
	auditHandler := auditHttp.NewHandler(cfg.AuditService)
	wsHandler := realtime.NewHandler(cfg.RealtimeHub)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/register", authMiddleware, adminMiddleware, authHandler.Register)
		v1.GET("/me", authMiddleware, authHandler.Me)
		v1.GET("/staff", authMiddleware, adminMiddleware, authHandler.ListStaff)

		public := v1.Group("/public")
		{
			apptHttp.RegisterPublicRoutes(public, apptHandler)
			calHttp.RegisterPublicRoutes(public, calHandler)
		}

		apptHttp.RegisterRoutes(v1, apptHandler, authMiddleware, manageMiddleware, deleteMiddleware)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware, manageMiddleware)
		calHttp.RegisterRoutes(v1, calHandler, authMiddleware)
		auditHttp.RegisterRoutes(v1, auditHandler, authMiddleware)

		v1.GET("/ws/appointments", authMiddleware, wsHandler.Serve)
	}

	return r
}
