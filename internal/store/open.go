package store

import (
	"github.com/pkg/errors"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/database"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/supabase"
)

// Open 按 store.driver 选择后端；连接信息缺失时退回 Unconfigured 而不是启动失败
func Open(cfg *config.Config) (Store, error) {
	log := logger.New("Store")

	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn("使用内存存储，重启后数据丢失")
		return NewMemory(), nil

	case config.DriverSupabase:
		if !cfg.Store.Supabase.Configured() {
			log.Warn("Supabase 未配置，读取返回空结果，写入将失败")
			return Unconfigured{}, nil
		}
		return NewSupabase(supabase.New(cfg.Store.Supabase.URL, cfg.Store.Supabase.Key)), nil

	case config.DriverMySQL, "":
		if cfg.Mysql.Host == "" || cfg.Mysql.DBName == "" {
			log.Warn("MySQL 未配置，读取返回空结果，写入将失败")
			return Unconfigured{}, nil
		}
		db, err := database.Open(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "连接 MySQL 失败")
		}
		return NewMySQL(db), nil
	}
	return nil, errors.Errorf("未知的存储后端: %s", cfg.Store.Driver)
}
