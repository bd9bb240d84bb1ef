package main

// @title MenuQR API
// @version 1.0
// @description QR menu ordering and recommendation API for restaurants and hotels.

// @contact.name API Support
// @contact.email support@menuqr.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/menuqr/menuqr/config"
	_ "github.com/menuqr/menuqr/docs" // Swagger docs (generated)
	"github.com/menuqr/menuqr/pkg/container"
	custommw "github.com/menuqr/menuqr/pkg/middleware"
)

// CustomValidator wires go-playground/validator into Echo
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized")
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer c.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	// Rate limiters
	globalRateLimiter := custommw.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommw.NewRateLimiter(5, 2) // login brute force protection

	// Global middleware
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(ctx echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", ctx.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(c.Metrics.Middleware())

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(echomw.Gzip())
	e.Use(echomw.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Public health and ops endpoints
	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]any{
			"name":        "MenuQR API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ctx echo.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.Ping(reqCtx); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := c.Cache.Redis.Ping(reqCtx).Result(); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// Public customer routes, reached from QR code menu pages
	v1.GET("/menu/:slug", c.MenuHandler.GetPublicMenu)
	v1.POST("/orders", c.OrderHandler.Create)
	v1.GET("/orders/:id", c.OrderHandler.Get)
	v1.GET("/businesses/:businessID/items/:itemID/recommendations", c.RecommendationHandler.GetForItem)
	v1.POST("/businesses/:businessID/recommendations/impression", c.RecommendationHandler.TrackImpression)
	v1.POST("/businesses/:businessID/recommendations/conversion", c.RecommendationHandler.TrackConversion)
	v1.POST("/businesses/:businessID/alerts", c.AlertHandler.Raise)

	v1.POST("/auth/login", c.AuthHandler.Login, authRateLimiter.RateLimitMiddleware())

	// Staff routes (require JWT)
	staff := v1.Group("/staff")
	staff.Use(custommw.JWT(cfg.JWTSecret))
	{
		staff.POST("/auth/register", c.AuthHandler.Register, custommw.RequireRole("owner"))

		// Order workflow
		staff.GET("/orders", c.OrderHandler.List)
		staff.PATCH("/orders/:id/status", c.OrderHandler.UpdateStatus, custommw.RequireRole("manager", "waiter", "kitchen"))

		// Menu management
		menuGroup := staff.Group("/menu", custommw.RequireRole("manager"))
		{
			menuGroup.POST("/categories", c.MenuHandler.CreateCategory)
			menuGroup.POST("/items", c.MenuHandler.CreateItem)
			menuGroup.PATCH("/items/:id/availability", c.MenuHandler.SetAvailability)
			menuGroup.POST("/items/:id/image", c.MenuHandler.UploadItemImage)
		}

		// Tables
		tableGroup := staff.Group("/tables", custommw.RequireRole("manager", "waiter"))
		{
			tableGroup.POST("", c.TableHandler.Create)
			tableGroup.GET("", c.TableHandler.List)
			tableGroup.PATCH("/:id/status", c.TableHandler.SetStatus)
		}

		// Waiter alerts
		alertGroup := staff.Group("/alerts", custommw.RequireRole("manager", "waiter"))
		{
			alertGroup.GET("", c.AlertHandler.ListPending)
			alertGroup.POST("/:id/acknowledge", c.AlertHandler.Acknowledge)
			alertGroup.POST("/:id/resolve", c.AlertHandler.Resolve)
		}

		// Analytics (owners and managers)
		analyticsGroup := staff.Group("/analytics", custommw.RequireRole("manager"))
		{
			analyticsGroup.GET("/summary", c.AnalyticsHandler.GetSummary)
			analyticsGroup.GET("/top-pairs", c.AnalyticsHandler.GetTopPairs)
			analyticsGroup.GET("/network", c.AnalyticsHandler.CompareToNetwork)
			analyticsGroup.GET("/export", c.AnalyticsHandler.ExportReport)
		}
	}

	// Scheduled jobs
	if cfg.EnableCronJobs {
		if err := c.CronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		c.CronManager.Start()
	} else {
		log.Printf("ℹ️  Cron jobs disabled (ENABLE_CRON_JOBS=false)")
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 MenuQR API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Daily 3AM (confidence recompute), Daily 7AM (stats), Monday 8AM (weekly digest)")

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cfg.EnableCronJobs {
		c.CronManager.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
