package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Environment    string   `mapstructure:"environment"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	ClientOrigin   string   `mapstructure:"client_origin"`
}

func (s ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, strict SameSite).
func (s ServerConfig) IsProduction() bool {
	env := strings.ToLower(s.Environment)
	return env == "production" || env == "prod"
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	SlowQueryMillis int    `mapstructure:"slow_query_ms"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_unicode_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	SessionExpDays int    `mapstructure:"session_exp_days"`
}

func (j JWTConfig) SessionTTL() time.Duration {
	return time.Duration(j.SessionExpDays) * 24 * time.Hour
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// ForEnvironment derives Secure and SameSite from the deployment environment:
// production cookies are Secure and Strict, everything else is Lax.
func (c CookieConfig) ForEnvironment(production bool) CookieConfig {
	out := c
	if production {
		out.Secure = true
		out.SameSite = "Strict"
	} else if out.SameSite == "" {
		out.SameSite = "Lax"
	}
	return out
}

type AuthConfig struct {
	JWT    JWTConfig    `mapstructure:"jwt"`
	Cookie CookieConfig `mapstructure:"cookie"`
}

type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// Configured reports whether SMTP credentials are present. Without them
// notifications are skipped with a warning.
func (e EmailConfig) Configured() bool {
	return e.SMTPUser != "" && e.SMTPPassword != ""
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type UploadConfig struct {
	Dir          string `mapstructure:"dir"`
	PublicPath   string `mapstructure:"public_path"`
	MaxFileBytes int64  `mapstructure:"max_file_bytes"`
	MaxFiles     int    `mapstructure:"max_files"`
}

type RateLimitConfig struct {
	RequestsPerWindow int `mapstructure:"requests_per_window"`
	WindowSeconds     int `mapstructure:"window_seconds"`
	ChatPerMinute     int `mapstructure:"chat_per_minute"`
	ChatBurst         int `mapstructure:"chat_burst"`
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}
