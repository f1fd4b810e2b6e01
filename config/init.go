package config

import (
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 WAKEUP_MYSQL_HOST
const EnvPrefix = "WAKEUP"

var (
	cfg  *Config
	lock sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("prefix", "api")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("store.driver", DriverMySQL)
	v.SetDefault("mysql.host", "127.0.0.1")
	v.SetDefault("mysql.port", "3306")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("jwt.access_expire", 7*24*3600)
	v.SetDefault("habit.timezone", "Asia/Seoul")
	v.SetDefault("habit.wakeup_start_hour", 0)
	v.SetDefault("habit.wakeup_end_hour", 5)
	v.SetDefault("habit.login_code_ttl_minutes", 10)
	v.SetDefault("habit.purge_spec", "@hourly")
	v.SetDefault("rate_limit.per_minute", 20)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("s3.presign_minutes", 60)
}

// Load 读取配置文件（可选）并用环境变量覆盖
// path 为空时在 . 和 ./config 下查找 config.yaml
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "读取配置文件失败")
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "解析配置失败")
	}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, errors.Wrap(err, "解析环境变量失败")
	}
	// 兼容前端工程里的两个变量名
	if url := os.Getenv("SUPABASE_URL"); url != "" {
		c.Store.Supabase.URL = url
	}
	if key := os.Getenv("SUPABASE_KEY"); key != "" {
		c.Store.Supabase.Key = key
	}
	return c, nil
}

func Init() {
	c, err := Load(os.Getenv("WAKEUP_CONFIG"))
	if err != nil {
		panic(err)
	}
	Set(c)
}

// Set 替换全局配置，测试中也用它注入
func Set(c *Config) {
	lock.Lock()
	defer lock.Unlock()
	cfg = c
}

func Get() *Config {
	lock.RLock()
	defer lock.RUnlock()
	if cfg == nil {
		return &Config{Mode: ModeDebug}
	}
	return cfg
}
