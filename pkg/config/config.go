package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Payments     PaymentsConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DAILYBASKET_APP_ENV" required:"true"`
	Port         string `envconfig:"DAILYBASKET_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DAILYBASKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DAILYBASKET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DAILYBASKET_DB_DSN"`
	Driver string `envconfig:"DAILYBASKET_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DAILYBASKET_DB_HOST"`
	LegacyPort     int    `envconfig:"DAILYBASKET_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DAILYBASKET_DB_USER"`
	LegacyPassword string `envconfig:"DAILYBASKET_DB_PASSWORD"`
	LegacyName     string `envconfig:"DAILYBASKET_DB_NAME"`
	LegacySSLMode  string `envconfig:"DAILYBASKET_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DAILYBASKET_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DAILYBASKET_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DAILYBASKET_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DAILYBASKET_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DAILYBASKET_REDIS_URL" required:"true"`
	Address      string        `envconfig:"DAILYBASKET_REDIS_ADDR"`
	Password     string        `envconfig:"DAILYBASKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"DAILYBASKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DAILYBASKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DAILYBASKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DAILYBASKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DAILYBASKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DAILYBASKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PaymentsConfig tunes the simulated payment provider. ProcessingDelay is the
// artificial latency the provider sleeps before confirming; Timeout bounds the
// whole submission, after which the attempt fails as a dependency error.
type PaymentsConfig struct {
	ProcessingDelay time.Duration `envconfig:"DAILYBASKET_PAYMENTS_PROCESSING_DELAY" default:"3s"`
	Timeout         time.Duration `envconfig:"DAILYBASKET_PAYMENTS_TIMEOUT" default:"10s"`
	InflightLockTTL time.Duration `envconfig:"DAILYBASKET_PAYMENTS_INFLIGHT_LOCK_TTL" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DAILYBASKET_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"DAILYBASKET_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	OrderEventsTopic        string `envconfig:"DAILYBASKET_PUBSUB_ORDER_EVENTS_TOPIC" default:"dbk-order-events"`
	OrderEventsSubscription string `envconfig:"DAILYBASKET_PUBSUB_ORDER_EVENTS_SUBSCRIPTION"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"DAILYBASKET_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"DAILYBASKET_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"DAILYBASKET_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
