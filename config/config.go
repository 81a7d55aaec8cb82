package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Report persistence
	Postgres PostgresConfig

	// Redis - Report read cache
	Redis RedisConfig

	// Kafka - Report events (optional)
	Kafka KafkaConfig

	// Upstream - Statistics sources
	Upstream UpstreamConfig

	// Cron - Scheduled report generation
	Cron CronConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. Empty brokers disable event
// publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// UpstreamConfig holds base URLs and path suffixes for the three statistics
// sources. The paths are configured because upstream deployments diverge on
// route layout.
type UpstreamConfig struct {
	PaymentURL    string
	EnrollmentURL string
	CourseURL     string

	PaymentStatsPath    string
	EnrollmentStatsPath string
	CourseStatsPath     string

	Timeout int // in seconds
}

// CronConfig is the configuration for the scheduled generation binary.
type CronConfig struct {
	Interval int // in minutes
}

// DiscordConfig is the configuration for the Discord webhook notifier.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("report-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/eduforge/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Legacy environment variable names kept for deployment compatibility
	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")
	_ = viper.BindEnv("upstream.payment_url", "UPSTREAM_PAYMENT_URL", "API_BASE_PAYMENT_URL")
	_ = viper.BindEnv("upstream.enrollment_url", "UPSTREAM_ENROLLMENT_URL", "API_BASE_ENROLLMENT_URL")
	_ = viper.BindEnv("upstream.course_url", "UPSTREAM_COURSE_URL", "API_BASE_COURSE_URL")

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Report persistence
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Report read cache
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Report events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Upstream - Statistics sources
	cfg.Upstream.PaymentURL = viper.GetString("upstream.payment_url")
	cfg.Upstream.EnrollmentURL = viper.GetString("upstream.enrollment_url")
	cfg.Upstream.CourseURL = viper.GetString("upstream.course_url")
	cfg.Upstream.PaymentStatsPath = viper.GetString("upstream.payment_stats_path")
	cfg.Upstream.EnrollmentStatsPath = viper.GetString("upstream.enrollment_stats_path")
	cfg.Upstream.CourseStatsPath = viper.GetString("upstream.course_stats_path")
	cfg.Upstream.Timeout = viper.GetInt("upstream.timeout")

	// Cron - Scheduled report generation
	cfg.Cron.Interval = viper.GetInt("cron.interval")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 3002)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "reports")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka (report generation events)
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "report.events")

	// Upstream statistics sources
	viper.SetDefault("upstream.payment_url", "https://payment.eduforge.io.vn")
	viper.SetDefault("upstream.enrollment_url", "https://enrollment.eduforge.io.vn")
	viper.SetDefault("upstream.course_url", "https://courses.eduforge.io.vn")
	viper.SetDefault("upstream.payment_stats_path", "/payment/stats")
	viper.SetDefault("upstream.enrollment_stats_path", "/enrollment/stats")
	viper.SetDefault("upstream.course_stats_path", "/courses/stats")
	viper.SetDefault("upstream.timeout", 5)

	// Cron
	viper.SetDefault("cron.interval", 1440) // daily
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Upstream.PaymentURL == "" {
		return fmt.Errorf("upstream.payment_url is required")
	}
	if cfg.Upstream.EnrollmentURL == "" {
		return fmt.Errorf("upstream.enrollment_url is required")
	}
	if cfg.Upstream.CourseURL == "" {
		return fmt.Errorf("upstream.course_url is required")
	}

	return nil
}
