package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altorracars/dealership-backend/internal/api"
	"github.com/altorracars/dealership-backend/internal/appointment"
	"github.com/altorracars/dealership-backend/internal/audit"
	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/availability"
	"github.com/altorracars/dealership-backend/internal/booking"
	"github.com/altorracars/dealership-backend/internal/calendar"
	"github.com/altorracars/dealership-backend/internal/realtime"
	"github.com/altorracars/dealership-backend/internal/staff"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Listener   *realtime.Listener
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Realtime push
	hub := realtime.NewHub()
	publisher := realtime.NewPublisher(cfg.DBPool)
	listener := realtime.NewListener(cfg.DBPool, hub)

	// Staff module
	staffRepo := staff.NewPgxRepository(cfg.DBPool)
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Availability module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo)

	// Booking module (slot index)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Audit module
	auditRepo := audit.NewPgxRepository(cfg.DBPool)
	auditService := audit.NewService(auditRepo)

	// Appointment module
	apptRepo := appointment.NewPgxRepository(cfg.DBPool)
	apptService := appointment.NewService(apptRepo, availService, bookingService, auditService, publisher)

	// Calendar module
	calService := calendar.NewService(availService, bookingService, apptService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		StaffService:        staffService,
		AvailabilityService: availService,
		AppointmentService:  apptService,
		CalendarService:     calService,
		AuditService:        auditService,
		RealtimeHub:         hub,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Listener:   listener,
	}
}
