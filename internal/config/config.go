package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     int    `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBScheme   string `mapstructure:"DB_SCHEME"`
	AppPort    string `mapstructure:"APP_PORT"`

	// База для ссылок на загруженные файлы в ответах API
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
	// TTL кэша метаданных /exists, секунд
	MediaMetaTTL int `mapstructure:"MEDIA_META_TTL"`

	// --- Redis ---
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// --- Auth ---
	AuthJWTSecret string        `mapstructure:"AUTH_JWT_SECRET"`
	AuthIssuer    string        `mapstructure:"AUTH_ISSUER"`
	AuthTokenTTL  time.Duration `mapstructure:"AUTH_TOKEN_TTL"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  DBHost: %s\n", c.DBHost))
	sb.WriteString(fmt.Sprintf("  DBPort: %d\n", c.DBPort))
	sb.WriteString(fmt.Sprintf("  DBUser: %s\n", c.DBUser))
	sb.WriteString(fmt.Sprintf("  DBName: %s\n", c.DBName))
	sb.WriteString(fmt.Sprintf("  DBScheme: %s\n", c.DBScheme))
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  PublicBaseURL: %s\n", c.PublicBaseURL))
	sb.WriteString(fmt.Sprintf("  MediaMetaTTL: %d\n", c.MediaMetaTTL))

	// пароль маскируем
	if c.DBPassword != "" {
		sb.WriteString("  DBPassword: ********\n")
	} else {
		sb.WriteString("  DBPassword: (empty)\n")
	}

	// Redis
	sb.WriteString(fmt.Sprintf("  RedisAddr: %s\n", c.RedisAddr))
	sb.WriteString(fmt.Sprintf("  RedisDB: %d\n", c.RedisDB))
	if c.RedisPassword != "" {
		sb.WriteString("  RedisPassword: ********\n")
	} else {
		sb.WriteString("  RedisPassword: (empty)\n")
	}

	// Auth
	if c.AuthJWTSecret != "" {
		sb.WriteString("  AuthJWTSecret: ********\n")
	} else {
		sb.WriteString("  AuthJWTSecret: (empty)\n")
	}
	sb.WriteString(fmt.Sprintf("  AuthIssuer: %s\n", c.AuthIssuer))
	sb.WriteString(fmt.Sprintf("  AuthTokenTTL: %s\n", c.AuthTokenTTL))

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_ENV", "APP_PORT", "PUBLIC_BASE_URL", "MEDIA_META_TTL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SCHEME",
		"REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
		"AUTH_JWT_SECRET", "AUTH_ISSUER", "AUTH_TOKEN_TTL",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("DB_SCHEME", "app")
	v.SetDefault("MEDIA_META_TTL", 60)
	v.SetDefault("AUTH_TOKEN_TTL", "24h")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
