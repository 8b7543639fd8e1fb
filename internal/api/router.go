package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lecturehall/lecture-api/docs"
	"github.com/lecturehall/lecture-api/internal/api/handler"
	"github.com/lecturehall/lecture-api/internal/api/middleware"
	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/core/ports"
	"github.com/lecturehall/lecture-api/internal/core/service"
	"github.com/lecturehall/lecture-api/internal/infrastructure/config"
	mongodb "github.com/lecturehall/lecture-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lecturehall/lecture-api/internal/infrastructure/db/redis"
	"github.com/lecturehall/lecture-api/internal/infrastructure/storage"
)

// maxUploadSize caps lecture-create requests; the video dominates the body.
const maxUploadSize = "100M"

// NewRouter builds and returns the Echo instance with all routes registered.
// The authentication and authorization gates are composed per route here, at
// startup, never per request.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	store *storage.ObjectStore,
	audit ports.AuditSink,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("lecture"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	lectureRepo := mongodb.NewLectureRepository(db)
	lectureCache := redisdb.NewLectureCache(rdb, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	lectureService := service.NewLectureService(lectureRepo, store, lectureCache, cfg.Storage.Prefix, log)

	authHandler := handler.NewAuthHandler(authService, handler.CookieOptions{
		Name:   cfg.Auth.CookieName,
		TTL:    cfg.TokenTTL,
		Secure: cfg.Production(),
	}, audit)
	lectureHandler := handler.NewLectureHandler(lectureService, audit)

	// --- Request pipeline ---
	perms := domain.DefaultPermissions()
	extractors := middleware.Extractors(cfg.Auth.Transport, cfg.Auth.CookieName)
	authenticate := middleware.Authenticate(cfg.JWTSecret, userRepo, extractors...)
	guard := func(resource string, action domain.Action) echo.MiddlewareFunc {
		return middleware.Guard(perms, resource, action)
	}

	// --- User routes ---
	user := e.Group("/api/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.POST("/logout", authHandler.Logout)
	user.GET("/profile", authHandler.Profile, authenticate, guard(domain.ResourceUser, domain.ActionDetail))
	user.PATCH("/profile", authHandler.UpdateProfile, authenticate, guard(domain.ResourceUser, domain.ActionUpdate))
	user.DELETE("/:id", authHandler.DeleteUser, authenticate, guard(domain.ResourceUser, domain.ActionDelete))

	// --- Lecture routes ---
	lecture := e.Group("/api/lecture", authenticate)
	lecture.GET("", lectureHandler.List, guard(domain.ResourceLecture, domain.ActionView))
	lecture.GET("/:id", lectureHandler.Get, guard(domain.ResourceLecture, domain.ActionDetail))
	lecture.POST("", lectureHandler.Create, guard(domain.ResourceLecture, domain.ActionCreate), echomiddleware.BodyLimit(maxUploadSize))
	lecture.PATCH("/:id", lectureHandler.Update, guard(domain.ResourceLecture, domain.ActionUpdate))
	lecture.DELETE("/:id", lectureHandler.Delete, guard(domain.ResourceLecture, domain.ActionDelete))

	// --- Observability & docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
