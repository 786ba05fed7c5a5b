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
	Pricing      PricingConfig
	Planner      PlannerConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = cfg.FeatureFlags.SQLitePath
		}
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SMARTCART_APP_ENV" required:"true"`
	Port         string `envconfig:"SMARTCART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SMARTCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SMARTCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SMARTCART_DB_DSN"`
	Driver string `envconfig:"SMARTCART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SMARTCART_DB_HOST"`
	LegacyPort     int    `envconfig:"SMARTCART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SMARTCART_DB_USER"`
	LegacyPassword string `envconfig:"SMARTCART_DB_PASSWORD"`
	LegacyName     string `envconfig:"SMARTCART_DB_NAME"`
	LegacySSLMode  string `envconfig:"SMARTCART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SMARTCART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SMARTCART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SMARTCART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SMARTCART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SMARTCART_REDIS_URL"`
	Address      string        `envconfig:"SMARTCART_REDIS_ADDR"`
	Password     string        `envconfig:"SMARTCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"SMARTCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SMARTCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SMARTCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SMARTCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SMARTCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SMARTCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PricingConfig tunes the retail pricing oracle.
type PricingConfig struct {
	QuoteCacheTTL       time.Duration `envconfig:"SMARTCART_PRICING_QUOTE_CACHE_TTL" default:"10m"`
	BaselineAvailPct    int           `envconfig:"SMARTCART_PRICING_BASELINE_AVAILABILITY_PCT" default:"85"`
	DefaultPriceCents   int           `envconfig:"SMARTCART_PRICING_DEFAULT_PRICE_CENTS" default:"399"`
	ReferenceCostCents  int           `envconfig:"SMARTCART_PRICING_REFERENCE_COST_CENTS" default:"500"`
	QuoteTimeoutSeconds int           `envconfig:"SMARTCART_PRICING_QUOTE_TIMEOUT_SECONDS" default:"5"`
}

// PlannerConfig tunes plan generation.
type PlannerConfig struct {
	MaxParallelQuotes int `envconfig:"SMARTCART_PLANNER_MAX_PARALLEL_QUOTES" default:"8"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"SMARTCART_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"SMARTCART_SQLITE_PATH" default:"smartcart.db"`
	AutoMigrate bool   `envconfig:"SMARTCART_AUTO_MIGRATE" default:"false"`
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
		Scheme: DriverPostgres,
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
