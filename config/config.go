// Package config loads the service configuration from a YAML file and
// HOMEGOAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"home-goal/domain"
	"home-goal/logging"
	"home-goal/service"
)

type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Log       logging.LogConfig `mapstructure:"log"`
	RateLimit RateLimitConfig   `mapstructure:"rate_limit"`
	Redis     RedisConfig       `mapstructure:"redis"`
	Policy    domain.Policy     `mapstructure:"policy"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RateLimitConfig selects the limiter backend: "memory" keeps buckets in
// process, "redis" shares fixed windows across replicas.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Backend  string        `mapstructure:"backend"`
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// ApplyDefaults fills the zero-valued collections that viper defaults cannot
// express without clobbering partial overrides.
func ApplyDefaults(cfg *Config) {
	defaults := service.DefaultPolicy()

	if len(cfg.Policy.InvestmentProducts) == 0 {
		cfg.Policy.InvestmentProducts = defaults.InvestmentProducts
	}
	if len(cfg.Policy.Challenges) == 0 {
		cfg.Policy.Challenges = defaults.Challenges
	}
	if len(cfg.Policy.LTVPresets) == 0 {
		cfg.Policy.LTVPresets = defaults.LTVPresets
	}
	if cfg.RateLimit.Backend == "" {
		cfg.RateLimit.Backend = BackendMemory
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Capacity <= 0 {
			errs = append(errs, errors.New("rate_limit.capacity must be positive"))
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, errors.New("rate_limit.window must be positive"))
		}
		switch c.RateLimit.Backend {
		case BackendMemory:
		case BackendRedis:
			if c.Redis.Addr == "" {
				errs = append(errs, errors.New("redis.addr is required for the redis rate limit backend"))
			}
		default:
			errs = append(errs, fmt.Errorf("rate_limit.backend %q is not supported", c.RateLimit.Backend))
		}
	}

	errs = append(errs, validatePolicy(c.Policy)...)
	return errors.Join(errs...)
}

func validatePolicy(p domain.Policy) []error {
	var errs []error

	if p.UnitScale <= 0 {
		errs = append(errs, errors.New("policy.unit_scale must be positive"))
	}
	if p.LoanCeiling < 0 {
		errs = append(errs, errors.New("policy.loan_ceiling must not be negative"))
	}
	if p.StressAdjustment < 0 {
		errs = append(errs, errors.New("policy.stress_adjustment must not be negative"))
	}
	if p.RiskThreshold <= 0 {
		errs = append(errs, errors.New("policy.risk_threshold must be positive"))
	}
	if p.MaxYears <= 0 {
		errs = append(errs, errors.New("policy.max_years must be positive"))
	}
	if p.SavingsDeposit < 0 {
		errs = append(errs, errors.New("policy.savings_deposit must not be negative"))
	}
	if _, ok := p.InvestmentProducts[p.DefaultProduct]; !ok {
		errs = append(errs, fmt.Errorf("policy.default_product %q is not an investment product", p.DefaultProduct))
	}
	for id, rate := range p.InvestmentProducts {
		if rate < service.MinReturnRate {
			errs = append(errs, fmt.Errorf("policy.investment_products.%s: rate %v below %v", id, rate, service.MinReturnRate))
		}
	}
	for id, amount := range p.Challenges {
		if amount < 0 {
			errs = append(errs, fmt.Errorf("policy.challenges.%s must not be negative", id))
		}
	}
	for id, ltv := range p.LTVPresets {
		if ltv < 0 || ltv > 100 {
			errs = append(errs, fmt.Errorf("policy.ltv_presets.%s must be within 0..100", id))
		}
	}
	return errs
}
