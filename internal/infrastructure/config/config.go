package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/nhadat/marketplace/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	OAuth     sharedConfig.OAuthConfig     `mapstructure:"oauth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Admin     sharedConfig.AdminConfig     `mapstructure:"admin"`
	Upload    sharedConfig.UploadConfig    `mapstructure:"upload"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional) and MARKETPLACE_* environment
// variables. env overrides server.environment when not empty.
func Load(env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("MARKETPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.environment", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Auth.Cookie = cfg.Auth.Cookie.ForEnvironment(cfg.Server.IsProduction())
	if len(cfg.Server.AllowedOrigins) == 0 && cfg.Server.ClientOrigin != "" {
		cfg.Server.AllowedOrigins = []string{cfg.Server.ClientOrigin}
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the configuration loaded by the last call to Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.base_url", "http://localhost:5000")
	v.SetDefault("server.client_origin", "http://localhost:5173")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "batdongsan_marketplace")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.slow_query_ms", 200)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.jwt.secret", "change-me")
	v.SetDefault("auth.jwt.session_exp_days", 7)
	v.SetDefault("auth.cookie.name", "token")
	v.SetDefault("auth.cookie.domain", "localhost")
	v.SetDefault("auth.cookie.path", "/")

	v.SetDefault("oauth.google.client_id", "")
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.google.redirect_url", "http://localhost:5000/api/auth/google/callback")

	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_name", "Marketplace")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "ChangeMe123!")
	v.SetDefault("admin.name", "Marketplace Admin")

	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.public_path", "/uploads")
	v.SetDefault("upload.max_file_bytes", 5*1024*1024)
	v.SetDefault("upload.max_files", 5)

	v.SetDefault("ratelimit.requests_per_window", 300)
	v.SetDefault("ratelimit.window_seconds", 60)
	v.SetDefault("ratelimit.chat_per_minute", 30)
	v.SetDefault("ratelimit.chat_burst", 5)
}
