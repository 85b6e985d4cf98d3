package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishwesh2904/timesheet-system/internal/api/handler"
	"github.com/vishwesh2904/timesheet-system/internal/api/middleware"
	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/service"
	mongodb "github.com/vishwesh2904/timesheet-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vishwesh2904/timesheet-system/internal/infrastructure/db/redis"
)

// Options carries the process-wide dependencies the router wires together.
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	ReportCacheTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timesheet"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	timesheetRepo := mongodb.NewTimesheetRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	taskService := service.NewTaskService(taskRepo, userRepo, log)
	timesheetService := service.NewTimesheetService(timesheetRepo, taskRepo, userRepo, log)
	reportCache := redisdb.NewReportCache(rdb, opts.ReportCacheTTL)
	reportService := service.NewReportService(timesheetRepo, taskRepo, userRepo, reportCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	timesheetHandler := handler.NewTimesheetHandler(timesheetService)
	userHandler := handler.NewUserHandler(userRepo)
	reportHandler := handler.NewReportHandler(reportService)

	authn := middleware.Auth(opts.JWTSecret)
	managerOnly := middleware.RBAC(domain.RoleManager)
	associateOnly := middleware.RBAC(domain.RoleAssociate)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authn)

	// --- Task routes ---
	tasks := e.Group("/api/tasks", authn)
	tasks.POST("/assign", taskHandler.Assign, managerOnly)
	tasks.GET("/all", taskHandler.All, managerOnly)
	tasks.GET("/my", taskHandler.My, associateOnly)

	// --- User routes ---
	users := e.Group("/api/users", authn)
	users.GET("/associates", userHandler.Associates, managerOnly)

	// --- Timesheet routes ---
	timesheets := e.Group("/api/timesheets", authn)
	timesheets.POST("/save", timesheetHandler.Save, associateOnly)
	timesheets.POST("/submit", timesheetHandler.Submit, associateOnly)
	timesheets.GET("/my", timesheetHandler.My, associateOnly)
	timesheets.GET("/all", timesheetHandler.All, managerOnly)

	// --- Report routes ---
	reports := e.Group("/api/reports", authn)
	reports.GET("/my", reportHandler.My, associateOnly)
	reports.GET("/overview", reportHandler.Overview, managerOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
