package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAuthor = "ユニフォームナビ編集部"

type Config struct {
	Port string

	ContentDir      string
	OutputDir       string
	SiteURL         string
	SiteName        string
	DefaultAuthor   string
	ContentCacheTTL time.Duration

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPTimeout  time.Duration
	AdminEmail   string

	JWTSecret string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig reads .env, then the environment, and fills in defaults.
// Nothing is logged here so config stays independent of the logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cacheTTL, err := time.ParseDuration(def(os.Getenv("CONTENT_CACHE_TTL"), "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTENT_CACHE_TTL: %w", err)
	}
	smtpTimeout, err := time.ParseDuration(def(os.Getenv("SMTP_TIMEOUT"), "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		ContentDir:      def(os.Getenv("CONTENT_DIR"), "posts"),
		OutputDir:       def(os.Getenv("OUTPUT_DIR"), "public"),
		SiteURL:         strings.TrimRight(def(os.Getenv("SITE_URL"), "https://uniform-navi.com"), "/"),
		SiteName:        def(os.Getenv("SITE_NAME"), "ユニフォームナビ"),
		DefaultAuthor:   def(os.Getenv("DEFAULT_AUTHOR"), DefaultAuthor),
		ContentCacheTTL: cacheTTL,

		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPTimeout:  smtpTimeout,

		JWTSecret: os.Getenv("JWT_SECRET"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}
	// Notifications go to the sending mailbox unless told otherwise.
	cfg.AdminEmail = def(os.Getenv("ADMIN_EMAIL"), cfg.SMTPUser)

	return cfg, nil
}

// Validate returns warnings plus an error only for settings the site cannot run without.
func (c *Config) Validate() (warnings []string, err error) {
	if strings.TrimSpace(c.ContentDir) == "" {
		return nil, fmt.Errorf("CONTENT_DIR is empty")
	}

	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		warnings = append(warnings, "DB is not fully configured (DB_HOST/DB_USER/DB_NAME), form submissions will fail")
	}

	if c.SMTPHost == "" || c.SMTPUser == "" {
		warnings = append(warnings, "SMTP is not fully configured, notifications are disabled")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty, admin API is disabled")
	}

	return warnings, nil
}

// DBConfigured reports whether enough settings are present to dial Postgres.
func (c *Config) DBConfigured() bool {
	return c.DbHost != "" && c.DbUser != "" && c.DbName != ""
}

// SMTPConfigured reports whether a real mailer can be built.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}

// GetDSN returns the full DSN, password included.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe returns the DSN with the password masked, for logs.
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
