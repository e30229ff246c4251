// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/model"
	"github.com/haierkeys/content-organizer-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Database 数据库连接配置
type Database struct {
	Type         string
	Path         string
	TablePrefix  string
	MaxIdleConns int
	MaxOpenConns int
	RunMode      string
}

type Dao struct {
	Db *gorm.DB

	migrateOnce sync.Map
}

func New(db *gorm.DB) *Dao {
	return &Dao{Db: db}
}

func (d *Dao) DB() *gorm.DB {
	return d.Db
}

// db 返回绑定 ctx 的连接，并保证对应模型的表结构只迁移一次
func (d *Dao) db(ctx context.Context, modelKey string) *gorm.DB {
	once, _ := d.migrateOnce.LoadOrStore(modelKey, &sync.Once{})
	once.(*sync.Once).Do(func() {
		_ = model.AutoMigrate(d.Db, modelKey)
	})
	return d.Db.WithContext(ctx)
}

func NewDBEngine(c Database) (*gorm.DB, error) {

	dialector := userDialector(c)
	if dialector == nil {
		return nil, fmt.Errorf("unsupported database type %q", c.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true, // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}
	if c.RunMode == "debug" {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	return db, nil
}

func userDialector(c Database) gorm.Dialector {
	if c.Type == "sqlite" {
		if !fileurl.IsExist(c.Path) {
			fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path)
	}
	return nil
}
