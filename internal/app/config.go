// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/content-organizer-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
	Share    ShareConfig    `yaml:"share"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File 日志文件路径，默认为 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AuthTokenKey string `yaml:"auth-token-key" default:"content-organizer-Auth-Token"`
	// TokenExpiry Token 过期时间，支持格式：7d（天）、24h（小时）、30m（分钟）
	TokenExpiry string `yaml:"token-expiry" default:"365d"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type 数据库类型
	Type string `yaml:"type" default:"sqlite"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/db.sqlite3"`
	// TablePrefix 表前缀
	TablePrefix string `yaml:"table-prefix"`
	// MaxIdleConns 最大闲置连接数，默认 10
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns 最大打开连接数，默认 100
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
}

// UserConfig 用户配置
type UserConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// ShareConfig 分享与版本保留配置
type ShareConfig struct {
	// KeepVersions 每个文件夹保留的版本数
	KeepVersions int `yaml:"keep-versions" default:"3"`
	// VersionExpiry 非激活版本过期时间，支持格式：90d
	VersionExpiry string `yaml:"version-expiry" default:"90d"`
	// RollbackWindow 回滚时间窗口，支持格式：30d
	RollbackWindow string `yaml:"rollback-window" default:"30d"`
	// PruneInterval 清理任务执行间隔，支持格式：1h、24h
	PruneInterval string `yaml:"prune-interval" default:"24h"`
	// DefaultCurrency 付费分享默认币种
	DefaultCurrency string `yaml:"default-currency" default:"USD"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultPageSize 默认页面大小
	DefaultPageSize int `yaml:"default-page-size" default:"20"`
	// MaxPageSize 最大页面大小
	MaxPageSize int `yaml:"max-page-size" default:"100"`
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header Trace ID 请求头名称
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig 从文件加载配置并填充默认值
func LoadConfig(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set config defaults")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		cfg.File = abs
	} else {
		cfg.File = path
	}
	return cfg, nil
}

// LoadConfigFromBytes 从内置默认配置加载
func LoadConfigFromBytes(content []byte) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set config defaults")
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "parse embedded config")
	}
	return cfg, nil
}

// GetTokenExpiry 解析 Token 过期时间
func (c *AppConfig) GetTokenExpiry() time.Duration {
	d, err := util.ParseDuration(c.Security.TokenExpiry)
	if err != nil {
		return 365 * 24 * time.Hour
	}
	return d
}

// GetVersionExpiry 解析版本过期时间
func (c *AppConfig) GetVersionExpiry() time.Duration {
	d, err := util.ParseDuration(c.Share.VersionExpiry)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

// GetRollbackWindow 解析回滚时间窗口
func (c *AppConfig) GetRollbackWindow() time.Duration {
	d, err := util.ParseDuration(c.Share.RollbackWindow)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

// GetPruneInterval 解析清理任务执行间隔
func (c *AppConfig) GetPruneInterval() time.Duration {
	d, err := util.ParseDuration(c.Share.PruneInterval)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
