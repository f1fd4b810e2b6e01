package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/sentry/tracing"
	"wakeup-punch-system/internal/model"
)

// autoMigrateModels 启动时自动迁移的表
var autoMigrateModels = []any{
	&model.Member{},
	&model.WakeupLog{},
	&model.MustRecord{},
	&model.MobileLoginCode{},
}

func DSN(c config.Mysql) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.DBName)
}

// Open 连接 MySQL、注册追踪插件并迁移表结构
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg.Mysql)), gormConfig)
	if err != nil {
		return nil, err
	}
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormPlugin()); err != nil {
			return nil, err
		}
	}
	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, err
	}
	return db, nil
}
