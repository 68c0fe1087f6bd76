package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Device   DeviceConfig   `yaml:"device"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Goals    GoalsConfig    `yaml:"goals"`
	Windows  WindowsConfig  `yaml:"windows"`
	Sweep    SweepConfig    `yaml:"sweep"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"30s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"sesh-ledger"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DeviceConfig identifies the local device owner, whose stash is the local stash.
type DeviceConfig struct {
	OwnerID     string `yaml:"owner_id" env:"DEVICE_OWNER_ID" env-required:"true"`
	TimezoneRaw string `yaml:"timezone" env:"DEVICE_TIMEZONE" env-default:"UTC"`

	// Timezone is parsed from TimezoneRaw during validation.
	Timezone *time.Location `yaml:"-" env:"-"`
}

// LedgerConfig holds stash ledger settings.
type LedgerConfig struct {
	DefaultPricePerGramRaw string        `yaml:"default_price_per_gram" env:"LEDGER_DEFAULT_PRICE_PER_GRAM" env-default:"0"`
	DefaultGramsPerBowlRaw string        `yaml:"default_grams_per_bowl" env:"LEDGER_DEFAULT_GRAMS_PER_BOWL" env-default:"0.5"`
	TxMaxRetries           uint64        `yaml:"tx_max_retries"         env:"LEDGER_TX_MAX_RETRIES"         env-default:"5"`
	TxRetryBaseDelay       time.Duration `yaml:"tx_retry_base_delay"    env:"LEDGER_TX_RETRY_BASE_DELAY"    env-default:"10ms"`
	HistoryPageSize        uint64        `yaml:"history_page_size"      env:"LEDGER_HISTORY_PAGE_SIZE"      env-default:"500"`

	// DefaultPricePerGram is parsed from DefaultPricePerGramRaw during validation.
	DefaultPricePerGram decimal.Decimal `yaml:"-" env:"-"`
	// DefaultGramsPerBowl is parsed from DefaultGramsPerBowlRaw during validation.
	DefaultGramsPerBowl decimal.Decimal `yaml:"-" env:"-"`
}

// GoalsConfig holds goal progress engine settings.
type GoalsConfig struct {
	ThresholdStep     int           `yaml:"threshold_step"     env:"GOALS_THRESHOLD_STEP"     env-default:"10"`
	MaxUpdateRetries  uint64        `yaml:"max_update_retries" env:"GOALS_MAX_UPDATE_RETRIES" env-default:"5"`
	RetryBaseDelay    time.Duration `yaml:"retry_base_delay"   env:"GOALS_RETRY_BASE_DELAY"   env-default:"5ms"`
	FanoutConcurrency int           `yaml:"fanout_concurrency" env:"GOALS_FANOUT_CONCURRENCY" env-default:"8"`
	EventBuffer       int           `yaml:"event_buffer"       env:"GOALS_EVENT_BUFFER"       env-default:"64"`
}

// WindowsConfig controls time window resolution.
type WindowsConfig struct {
	// CalendarAccurate switches WEEK/MONTH/YEAR from 7/30/365-day rolling
	// windows to calendar arithmetic.
	CalendarAccurate bool `yaml:"calendar_accurate" env:"WINDOWS_CALENDAR_ACCURATE" env-default:"false"`
}

// SweepConfig holds settings for the periodic goal sweep run by cmd/tracker.
type SweepConfig struct {
	Interval time.Duration `yaml:"interval" env:"SWEEP_INTERVAL" env-default:"1m"`
	Timeout  time.Duration `yaml:"timeout"  env:"SWEEP_TIMEOUT"  env-default:"30s"`
}
