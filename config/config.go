package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// 存储后端
const (
	DriverMySQL    = "mysql"
	DriverSupabase = "supabase"
	DriverMemory   = "memory"
)

type Config struct {
	Host      string    `envconfig:"HOST" mapstructure:"host"`
	Port      string    `envconfig:"PORT" mapstructure:"port"`
	Prefix    string    `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode      Mode      `envconfig:"MODE" mapstructure:"mode"`
	Store     Store     `mapstructure:"store"`
	Mysql     Mysql     `mapstructure:"mysql"`
	Redis     Redis     `mapstructure:"redis"`
	JWT       JWT       `mapstructure:"jwt"`
	Auth      Auth      `mapstructure:"auth"`
	Habit     Habit     `mapstructure:"habit"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT" mapstructure:"rate_limit"`
	Cors      Cors      `mapstructure:"cors"`
	Log       Log       `mapstructure:"log"`
	Sentry    Sentry    `mapstructure:"sentry"`
	S3        S3        `mapstructure:"s3"`
}

type Store struct {
	Driver   string   `envconfig:"DRIVER" mapstructure:"driver"` // mysql / supabase / memory
	Supabase Supabase `mapstructure:"supabase"`
}

// Supabase 两个值缺一即视为未配置，读操作降级为空结果，写操作直接失败
type Supabase struct {
	URL string `envconfig:"URL" mapstructure:"url"`
	Key string `envconfig:"KEY" mapstructure:"key"`
}

func (s Supabase) Configured() bool {
	return s.URL != "" && s.Key != ""
}

type Mysql struct {
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Username string `envconfig:"USERNAME" mapstructure:"username"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"DB_NAME" mapstructure:"db_name"`
}

// Redis Host 为空时会话吊销列表退回进程内存
type Redis struct {
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"DB" mapstructure:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET" mapstructure:"access_secret"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE" mapstructure:"access_expire"` // 秒
}

type Auth struct {
	AdminID           string `envconfig:"ADMIN_ID" mapstructure:"admin_id"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" mapstructure:"admin_password_hash"` // bcrypt
}

type Habit struct {
	Timezone            string `envconfig:"TIMEZONE" mapstructure:"timezone"`
	WakeupStartHour     int    `envconfig:"WAKEUP_START_HOUR" mapstructure:"wakeup_start_hour"`
	WakeupEndHour       int    `envconfig:"WAKEUP_END_HOUR" mapstructure:"wakeup_end_hour"` // 不含
	LoginCodeTTLMinutes int    `envconfig:"LOGIN_CODE_TTL_MINUTES" mapstructure:"login_code_ttl_minutes"`
	PurgeSpec           string `envconfig:"PURGE_SPEC" mapstructure:"purge_spec"` // cron 表达式
}

type RateLimit struct {
	PerMinute int `envconfig:"PER_MINUTE" mapstructure:"per_minute"`
	Burst     int `envconfig:"BURST" mapstructure:"burst"`
}

type Cors struct {
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" mapstructure:"allow_origins"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string        `envconfig:"DSN" mapstructure:"dsn"`
	Environment string        `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64       `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
	Tracing     SentryTracing `mapstructure:"tracing"`
}

type SentryTracing struct {
	DBSlowThresholdMs    int  `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
	RedisSlowThresholdMs int  `envconfig:"REDIS_SLOW_THRESHOLD_MS" mapstructure:"redis_slow_threshold_ms"`
	TraceHTTPCalls       bool `envconfig:"TRACE_HTTP_CALLS" mapstructure:"trace_http_calls"`
}

// S3 导出归档，Bucket 为空时导出文件直接返回给客户端
type S3 struct {
	Endpoint        string `envconfig:"ENDPOINT" mapstructure:"endpoint"`
	Bucket          string `envconfig:"BUCKET" mapstructure:"bucket"`
	Region          string `envconfig:"REGION" mapstructure:"region"`
	AccessKey       string `envconfig:"ACCESS_KEY" mapstructure:"access_key"`
	SecretAccessKey string `envconfig:"SECRET_KEY" mapstructure:"secret_key"`
	Prefix          string `envconfig:"PREFIX" mapstructure:"prefix"`
	UsePathStyle    bool   `envconfig:"PATH_STYLE" mapstructure:"path_style"`
	PresignMinutes  int    `envconfig:"PRESIGN_MINUTES" mapstructure:"presign_minutes"`
}
