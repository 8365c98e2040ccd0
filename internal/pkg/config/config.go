package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, sweep intervals, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Gateway GatewayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"720h"`
}

// BookingConfig drives the lifecycle engine: the zone in which a booking's
// start instant is computed, how long an abandoned calendar session lives,
// and the sweep intervals.
type BookingConfig struct {
	TimeZone            string        `envconfig:"BOOKING_TIMEZONE" default:"Europe/Madrid"`
	SessionTTL          time.Duration `envconfig:"BOOKING_SESSION_TTL" default:"30m"`
	ReminderInterval    time.Duration `envconfig:"BOOKING_REMINDER_INTERVAL" default:"15m"`
	AutoCancelInterval  time.Duration `envconfig:"BOOKING_AUTO_CANCEL_INTERVAL" default:"1h"`
	RefundSweepInterval time.Duration `envconfig:"BOOKING_REFUND_SWEEP_INTERVAL" default:"24h"`
	RefundReminderEvery time.Duration `envconfig:"BOOKING_REFUND_REMINDER_EVERY" default:"24h"`
	SweepsRunInProcess  bool          `envconfig:"BOOKING_SWEEPS_IN_PROCESS" default:"true"`
}

// GatewayConfig points at the chat gateway that actually delivers
// notifications to end users.
type GatewayConfig struct {
	NotifyURL string        `envconfig:"GATEWAY_NOTIFY_URL" required:"true"`
	Token     string        `envconfig:"GATEWAY_TOKEN" default:""`
	Timeout   time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			TimeZone:            "Europe/Madrid",
			SessionTTL:          30 * time.Minute,
			ReminderInterval:    15 * time.Minute,
			AutoCancelInterval:  time.Hour,
			RefundSweepInterval: 24 * time.Hour,
			RefundReminderEvery: 24 * time.Hour,
		},
		Gateway: GatewayConfig{
			NotifyURL: "http://localhost:9999/notify",
			Token:     "test-gateway-token",
			Timeout:   time.Second,
		},
	}
}
