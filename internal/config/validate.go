package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Device.OwnerID) == "" {
		return fmt.Errorf("device.owner_id is required")
	}

	loc, err := time.LoadLocation(c.Device.TimezoneRaw)
	if err != nil {
		return fmt.Errorf("device.timezone: %w", err)
	}
	c.Device.Timezone = loc

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if err := c.Goals.validate(); err != nil {
		return fmt.Errorf("goals: %w", err)
	}

	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("sweep.interval must be > 0 (got %v)", c.Sweep.Interval)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	price, err := ParseGrams(l.DefaultPricePerGramRaw)
	if err != nil {
		return fmt.Errorf("default_price_per_gram: %w", err)
	}
	l.DefaultPricePerGram = price

	bowl, err := ParseGrams(l.DefaultGramsPerBowlRaw)
	if err != nil {
		return fmt.Errorf("default_grams_per_bowl: %w", err)
	}
	l.DefaultGramsPerBowl = bowl

	if l.HistoryPageSize == 0 {
		return fmt.Errorf("history_page_size must be > 0")
	}

	return nil
}

func (g *GoalsConfig) validate() error {
	if g.ThresholdStep <= 0 || g.ThresholdStep > 100 {
		return fmt.Errorf("threshold_step must be in 1..100 (got %d)", g.ThresholdStep)
	}
	if g.FanoutConcurrency <= 0 {
		return fmt.Errorf("fanout_concurrency must be > 0 (got %d)", g.FanoutConcurrency)
	}
	if g.EventBuffer < 0 {
		return fmt.Errorf("event_buffer must be >= 0 (got %d)", g.EventBuffer)
	}
	return nil
}

// ParseGrams parses a non-negative decimal quantity such as "0.3".
// An empty string parses as zero.
func ParseGrams(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("must be >= 0 (got %s)", raw)
	}

	return d, nil
}
