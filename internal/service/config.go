// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User  UserServiceConfig  // User related config // 用户相关配置
	Share ShareServiceConfig // Share related config // 分享相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // Whether registration is enabled // 注册是否启用
}

// ShareServiceConfig sharing service configuration
// ShareServiceConfig 分享服务配置
type ShareServiceConfig struct {
	KeepVersions    int    // Versions to keep per folder // 每个文件夹保留的版本数
	VersionExpiry   string // Version expiry duration (e.g., 90d) // 版本过期时间（支持格式：90d）
	RollbackWindow  string // Rollback window duration (e.g., 30d) // 回滚时间窗口（支持格式：30d）
	DefaultCurrency string // Currency for paid shares // 付费分享默认币种
}
