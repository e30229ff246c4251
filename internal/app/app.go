package app

import (
	"fmt"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/dao"
	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/service"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo    domain.UserRepository
	FolderRepo  domain.FolderRepository
	ContentRepo domain.ContentRepository
	VersionRepo domain.VersionRepository

	// Service 层
	UserService    service.UserService
	FolderService  service.FolderService
	ContentService service.ContentService
	QuotaService   service.QuotaService
	SharingService service.SharingService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// 启动时间，用于健康检查
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	a.Dao = dao.New(db)

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "content-organizer-service",
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.FolderRepo = dao.NewFolderRepository(a.Dao)
	a.ContentRepo = dao.NewContentRepository(a.Dao)
	a.VersionRepo = dao.NewVersionRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		Share: service.ShareServiceConfig{
			KeepVersions:    cfg.Share.KeepVersions,
			VersionExpiry:   cfg.Share.VersionExpiry,
			RollbackWindow:  cfg.Share.RollbackWindow,
			DefaultCurrency: cfg.Share.DefaultCurrency,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.QuotaService = service.NewQuotaService(a.UserRepo, a.FolderRepo, a.ContentRepo, a.VersionRepo, logger)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.FolderService = service.NewFolderService(a.FolderRepo, a.ContentRepo, a.QuotaService, logger)
	a.ContentService = service.NewContentService(a.ContentRepo, a.FolderRepo, a.QuotaService, logger)
	a.SharingService = service.NewSharingService(a.FolderRepo, a.ContentRepo, a.VersionRepo, a.QuotaService, svcConfig.Share, logger)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}
