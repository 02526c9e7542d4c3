package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vitacare/clinic-api/docs"
	"github.com/vitacare/clinic-api/internal/api/handler"
	"github.com/vitacare/clinic-api/internal/api/middleware"
	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
	"github.com/vitacare/clinic-api/internal/core/service"
	"github.com/vitacare/clinic-api/internal/infrastructure/config"
	mongodb "github.com/vitacare/clinic-api/internal/infrastructure/db/mongo"
	"github.com/vitacare/clinic-api/internal/infrastructure/db/postgres"
	redisdb "github.com/vitacare/clinic-api/internal/infrastructure/db/redis"
	"github.com/vitacare/clinic-api/internal/pkg/hash"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// mdb may be nil; the audit trail is then disabled and audit events dropped.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, mdb *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	userRepo := postgres.NewUserRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	var audit ports.AuditLog
	if mdb != nil {
		audit = mongodb.NewAuditRepository(mdb)
	}

	gate := service.NewRegistrationGate(hasher, cfg.Registration.MasterUsername, cfg.Registration.MasterPasswordHash)
	authService := service.NewAuthService(userRepo, hasher, sessionStore, audit, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, hasher, gate, audit, log)
	schedulingService := service.NewSchedulingService(appointmentRepo, userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	appointmentHandler := handler.NewAppointmentHandler(schedulingService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, sessionStore)

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/auth/logout", authHandler.Logout)

	v1.GET("/users", userHandler.ListByRole)
	v1.PUT("/profile", userHandler.UpdateProfile)
	v1.PUT("/users/:username", userHandler.UpdateUser, middleware.RBAC(domain.RoleAdministrator))

	v1.POST("/appointments", appointmentHandler.Book, middleware.RBAC(domain.RolePatient))
	v1.GET("/appointments", appointmentHandler.ListMine, middleware.RBAC(domain.RolePatient))
	v1.GET("/appointments/assigned", appointmentHandler.ListAssigned, middleware.RBAC(domain.RolePhysician))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, mdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
