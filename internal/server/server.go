// Package server contains HTTP and WebSocket handlers for the CareerFlow API.
package server

import (
	"context"
	"io"
	"log/slog"
	"time"

	_ "careerflow/docs" // swagger docs
	"careerflow/internal/bootstrap"
	"careerflow/internal/cache"
	"careerflow/internal/config"
	"careerflow/internal/mailer"
	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/notifications"
	"careerflow/internal/repository"
	"careerflow/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultBodyLimit = 10 * 1024 * 1024

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo         repository.UserRepository
	jobRepo          repository.JobRepository
	applicationRepo  repository.ApplicationRepository
	notificationRepo repository.NotificationRepository

	mailer   mailer.Mailer
	resumes  service.ResumeStore
	notifier *notifications.Notifier
	hub      *notifications.Hub

	authService         *service.AuthService
	jobService          *service.JobService
	applicationService  *service.ApplicationService
	notificationService *service.NotificationService
	profileService      *service.ProfileService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	rt, err := bootstrap.InitRuntime(cfg, bootstrap.Options{ApplySchema: true})
	if err != nil {
		return nil, err
	}

	return NewServerWithDeps(cfg, rt.DB, rt.Redis, rt.Mailer)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil; caching, revocation and cross-instance push are then disabled.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mail mailer.Mailer) (*Server, error) {
	resumes, err := service.NewDiskResumeStore(cfg.UploadDir, int64(cfg.ResumeMaxUploadSizeMB)<<20)
	if err != nil {
		return nil, err
	}

	// The user read-through cache follows the injected client.
	cache.SetClient(redisClient)

	return &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("careerflow-api"),
		userRepo:         repository.NewUserRepository(db),
		jobRepo:          repository.NewJobRepository(db),
		applicationRepo:  repository.NewApplicationRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		mailer:           mail,
		resumes:          resumes,
		notifier:         notifications.NewNotifier(redisClient),
		hub:              notifications.NewHub(),
	}, nil
}

// NewApp builds the Fiber app with the server's error handler and body limit.
func (s *Server) NewApp() *fiber.App {
	bodyLimit := defaultBodyLimit
	if resumeLimit := (s.config.ResumeMaxUploadSizeMB + 1) << 20; resumeLimit > bodyLimit {
		bodyLimit = resumeLimit
	}
	return fiber.New(fiber.Config{
		AppName:   "CareerFlow API",
		BodyLimit: bodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		},
	})
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Resumes are fetched cross-origin by the frontend.
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so short-circuited responses still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Static(service.UploadsURLPrefix, s.config.UploadDir, fiber.Static{
		ByteRange: true,
		MaxAge:    3600,
	})

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "CareerFlow API Metrics",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 5, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)

	// Browsers cannot set headers on the handshake, so the socket authenticates
	// with ?token= and is registered ahead of the header-only protected group.
	api.Get("/ws", middleware.ProtectWebSocket(s.authSvc()), s.RequireUpgrade, s.WebsocketHandler())

	protected := api.Group("", middleware.Protect(s.authSvc()))

	jobs := protected.Group("/jobs")
	jobs.Get("/", s.ListJobs)
	jobs.Post("/", s.CreateJob)
	jobs.Patch("/:id", s.UpdateJob)
	jobs.Delete("/:id", s.DeleteJob)

	applications := protected.Group("/applications")
	applications.Post("/", s.Apply)
	applications.Get("/", s.ListApplications)
	applications.Get("/analytics", s.GetAnalytics)
	applications.Get("/notifications", s.ListNotifications)
	applications.Patch("/notifications/:id/read", s.MarkNotificationRead)
	applications.Patch("/:id/status", s.UpdateApplicationStatus)

	users := protected.Group("/users")
	users.Get("/profile", s.GetProfile)
	users.Patch("/profile", s.UpdateProfile)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unavailable"
	} else if sqlDB, err := s.db.DB(); err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis == nil {
		redisStatus = "unavailable"
	} else if err := s.redis.Ping(ctx).Err(); err != nil {
		redisStatus = "unhealthy"
	}

	// Redis is optional: the API degrades to uncached, instance-local behavior without it.
	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app, wires realtime delivery and listens on the configured port.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := s.NewApp()
	s.app = app
	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	if err := s.hub.StartWiring(ctx, s.notifier); err != nil {
		middleware.Logger.Warn("realtime wiring failed; websocket push limited to this instance",
			slog.String("error", err.Error()))
	}

	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if err := s.hub.Shutdown(ctx); err != nil {
		middleware.Logger.Error("error shutting down notification hub", slog.String("error", err.Error()))
	}

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
			}
		}
	}

	if closer, ok := s.mailer.(io.Closer); ok {
		if merr := closer.Close(); merr != nil {
			middleware.Logger.Error("error closing mailer", slog.String("error", merr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
