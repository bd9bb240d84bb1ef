package container

import (
	"time"

	"github.com/menuqr/menuqr/config"
	"github.com/menuqr/menuqr/pkg/alerts"
	"github.com/menuqr/menuqr/pkg/api/handlers"
	"github.com/menuqr/menuqr/pkg/auth"
	"github.com/menuqr/menuqr/pkg/cache"
	"github.com/menuqr/menuqr/pkg/database"
	"github.com/menuqr/menuqr/pkg/email"
	"github.com/menuqr/menuqr/pkg/export"
	"github.com/menuqr/menuqr/pkg/jobs"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/menu"
	"github.com/menuqr/menuqr/pkg/metrics"
	"github.com/menuqr/menuqr/pkg/orders"
	"github.com/menuqr/menuqr/pkg/recommendations"
	"github.com/menuqr/menuqr/pkg/storage"
	"github.com/menuqr/menuqr/pkg/tables"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   *cache.Client
	Metrics *metrics.Metrics
	Storage *storage.Service // nil when S3 is not configured

	// Services
	Engine        *recommendations.Engine
	Analytics     *recommendations.Analytics
	OrderService  *orders.Service
	MenuService   *menu.Service
	TableService  *tables.Service
	AlertService  *alerts.Service
	AuthService   *auth.Service
	EmailService  *email.Service
	ExportService *export.Service

	// Jobs
	CronManager *jobs.CronManager

	// Handlers
	AuthHandler           *handlers.AuthHandler
	MenuHandler           *handlers.MenuHandler
	OrderHandler          *handlers.OrderHandler
	RecommendationHandler *handlers.RecommendationHandler
	AnalyticsHandler      *handlers.AnalyticsHandler
	TableHandler          *handlers.TableHandler
	AlertHandler          *handlers.AlertHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	c.Logger.Info("Container initialized",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database, cache and metrics
func (c *Container) initInfrastructure() error {
	var err error

	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	c.Metrics = metrics.New()

	if c.Config.S3Bucket != "" {
		c.Storage, err = storage.NewService(storage.Config{
			AWSAccessKeyID:     c.Config.AWSAccessKey,
			AWSSecretAccessKey: c.Config.AWSSecretKey,
			AWSRegion:          c.Config.AWSRegion,
			Bucket:             c.Config.S3Bucket,
			PublicBaseURL:      c.Config.S3PublicBaseURL,
		})
		if err != nil {
			c.Logger.Error("Failed to initialize S3 storage", "error", err)
			return err
		}
	} else {
		c.Logger.Warn("S3 bucket not configured, image uploads disabled")
	}

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() {
	c.Engine = recommendations.NewEngine(c.DB.Ent, c.Cache, c.Logger, recommendations.Options{
		MinConfidence:    c.Config.RecommendationMinConfidence,
		MinTimesTogether: c.Config.RecommendationMinTimesTogether,
		DefaultLimit:     c.Config.RecommendationDefaultLimit,
		CacheTTL:         time.Duration(c.Config.RecommendationCacheTTLSeconds) * time.Second,
	}).WithMetrics(c.Metrics)
	c.Analytics = recommendations.NewAnalytics(c.DB.Ent)

	c.OrderService = orders.NewService(c.DB.Ent, c.Engine, c.Logger, c.Config.OrderTaxRate)
	c.MenuService = menu.NewService(c.DB.Ent, c.Cache, c.Logger)
	c.TableService = tables.NewService(c.DB.Ent, c.Logger)
	c.AlertService = alerts.NewService(c.DB.Ent, c.Logger)
	c.AuthService = auth.NewService(c.DB.Ent, c.Logger, c.Config.JWTSecret, c.Config.JWTExpirationHours)

	c.EmailService = email.NewService(
		c.Config.EmailFrom,
		c.Config.EmailFromName,
		c.Config.SendGridAPIKey,
	)
	c.ExportService = export.NewService()

	c.CronManager = jobs.NewCronManager(
		c.DB.Ent,
		c.Engine,
		c.Analytics,
		c.EmailService,
		c.Config.DigestRecipients,
		nil,
	)

	c.Logger.Info("Services initialized",
		"recommendation_engine", "ready",
		"order_service", "ready",
		"menu_service", "ready")
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.AuthHandler = handlers.NewAuthHandler(c.AuthService, c.Metrics)
	c.MenuHandler = handlers.NewMenuHandler(c.MenuService, c.Storage)
	c.OrderHandler = handlers.NewOrderHandler(c.OrderService, c.Metrics)
	c.RecommendationHandler = handlers.NewRecommendationHandler(c.Engine, c.Metrics)
	c.AnalyticsHandler = handlers.NewAnalyticsHandler(c.Analytics, c.ExportService, c.DB.Ent)
	c.TableHandler = handlers.NewTableHandler(c.TableService)
	c.AlertHandler = handlers.NewAlertHandler(c.AlertService, c.Metrics)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
