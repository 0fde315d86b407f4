package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Backend   BackendConfig   `yaml:"backend"   validate:"required"`
	Checkin   CheckinConfig   `yaml:"checkin"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level string onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine maps the configured engine string onto wbf's logger.Engine.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// BackendConfig points the gateway at the church-management REST backend
// that owns members, meetings and attendance records.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" validate:"required,url"`
	Token   string        `yaml:"token"    env:"BACKEND_TOKEN"    validate:"required"`
	Timeout time.Duration `yaml:"timeout"  env:"BACKEND_TIMEOUT"  env-default:"10s" validate:"gt=0"`
}

// CheckinConfig binds the station to one meeting and tunes the scan loop.
type CheckinConfig struct {
	MeetingID        string        `yaml:"meeting_id"         env:"CHECKIN_MEETING_ID"         validate:"required"`
	SuccessBannerTTL time.Duration `yaml:"success_banner_ttl" env:"CHECKIN_SUCCESS_BANNER_TTL" env-default:"3s"   validate:"gt=0"`
	ErrorBannerTTL   time.Duration `yaml:"error_banner_ttl"   env:"CHECKIN_ERROR_BANNER_TTL"   env-default:"6s"   validate:"gt=0"`
	LiveWindow       time.Duration `yaml:"live_window"        env:"CHECKIN_LIVE_WINDOW"        env-default:"3h"   validate:"gt=0"`
	RecentLimit      int           `yaml:"recent_limit"       env:"CHECKIN_RECENT_LIMIT"       env-default:"10"   validate:"min=1"`
	CameraURL        string        `yaml:"camera_url"         env:"CHECKIN_CAMERA_URL"         env-default:""`
	SampleInterval   time.Duration `yaml:"sample_interval"    env:"CHECKIN_SAMPLE_INTERVAL"    env-default:"200ms" validate:"gt=0"`
}

type PostgresConfig struct {
	Enabled         bool          `yaml:"enabled"           env:"DB_ENABLED"           env-default:"false"`
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"checkin_gateway"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
