package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" env-default:"8080"`
	DbHost    string `env:"DB_HOST"`
	DbPort    string `env:"DB_PORT" env-default:"5432"`
	DbUser    string `env:"DB_USER"`
	DbPass    string `env:"DB_PASSWORD"`
	DbName    string `env:"DB_NAME"`
	DbSSLMode string `env:"DB_SSLMODE" env-default:"disable"`

	JWTSecret      string        `env:"JWT_SECRET"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_EXPIRY" env-default:"15m"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	Log      string `env:"LOG"`
	LogLevel string `env:"LOGLEVEL" env-default:"info"`
	LogDir   string `env:"LOG_DIR" env-default:"logs"`
	Env      string `env:"ENV" env-default:"prod"` // dev|prod

	DefaultLocale string `env:"DEFAULT_LOCALE" env-default:"en"`

	TagNameMin     int    `env:"TAG_NAME_MIN" env-default:"2"`
	TagNameMax     int    `env:"TAG_NAME_MAX" env-default:"15"`
	TagNamePattern string `env:"TAG_NAME_PATTERN" env-default:"^[\\p{L}\\p{N}_\\- ]+$"`

	LoginRPS   float64 `env:"LOGIN_RPS" env-default:"1"`
	LoginBurst int     `env:"LOGIN_BURST" env-default:"5"`
}

// LoadConfig загружает .env, затем читает переменные окружения в структуру с дефолтами.
// Ничего не логирует, чтобы не зависеть от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))

	return &cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if c.TagNameMin < 1 || c.TagNameMax < c.TagNameMin {
		return nil, fmt.Errorf("invalid tag name bounds: min=%d max=%d", c.TagNameMin, c.TagNameMax)
	}

	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is empty, logout blacklist disabled")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN возвращает полную DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe возвращает DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
