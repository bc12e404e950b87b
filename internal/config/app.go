package config

import (
	"time"

	"go-admin-console/internal/handler"
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/repository"
	"go-admin-console/internal/resource"
	"go-admin-console/internal/router"
	"go-admin-console/internal/usecase"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	DB       *gorm.DB
	Redis    *redis.Client
	App      *gin.Engine
	Log      *logrus.Logger
	Validate *validator.Validate
	Config   *Config
}

func Bootstrap(config *BootstrapConfig) {
	jwtManager := token.NewTokenManager(config.Config.JWT.SecretKey, config.Config.JWT.ExpirationTime)
	registry := resource.DefaultRegistry()

	// backend client shared by every usecase; the base URL is the single
	// configured host for all resources
	api := backend.NewClient(
		config.Config.Backend.BaseURL,
		time.Duration(config.Config.Backend.Timeout)*time.Second,
		config.Log,
	)

	// setup repositories
	auditRepository := repository.NewAuditRepository(config.DB, config.Log)

	// setup use cases
	cacheTTL := time.Duration(config.Config.Redis.CacheTTL) * time.Second
	listUsecase := usecase.NewListUsecase(api, config.Log, config.Redis, cacheTTL)
	exportUsecase := usecase.NewExportUsecase(api, config.Log, config.Config.Export.RowCap)
	kycUsecase := usecase.NewKycUsecase(api, config.Log, config.Redis, auditRepository)
	walletUsecase := usecase.NewWalletUsecase(api, config.Log, config.Redis, auditRepository, config.Config.Wallet.AdjustCeiling)
	notificationUsecase := usecase.NewNotificationUsecase(api, config.Log, auditRepository)
	authUsecase := usecase.NewAuthUsecase(api, config.Log, jwtManager)
	auditUsecase := usecase.NewAuditUsecase(auditRepository, config.Log)

	// setup handlers
	cookieMaxAge := config.Config.JWT.ExpirationTime * 3600
	authHandler := handler.NewAuthHandler(authUsecase, config.Log, config.Validate, cookieMaxAge)
	resourceHandler := handler.NewResourceHandler(registry, listUsecase, exportUsecase, config.Log)
	actionHandler := handler.NewActionHandler(kycUsecase, walletUsecase, notificationUsecase, config.Log, config.Validate)
	auditHandler := handler.NewAuditHandler(auditUsecase, config.Log)

	// setup middleware
	authMiddleware := middleware.NewAuthMiddleware(config.Log, jwtManager)

	routeConfig := router.RouteConfig{
		App:              config.App,
		AuthHandler:      authHandler,
		ResourceHandler:  resourceHandler,
		ActionHandler:    actionHandler,
		AuditHandler:     auditHandler,
		AuthMiddleware:   authMiddleware,
		LoggerMiddleware: middleware.LoggerMiddleware(config.Log),
	}
	routeConfig.SetupRoute()
}
