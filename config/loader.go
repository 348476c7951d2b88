package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"home-goal/service"
)

const envPrefix = "HOMEGOAL"

// newViper maps nested keys to HOMEGOAL_* variables, e.g. policy.loan_ceiling
// resolves to HOMEGOAL_POLICY_LOAN_CEILING.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.backend", BackendMemory)
	v.SetDefault("rate_limit.capacity", 5)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "home-goal:ratelimit:")

	p := service.DefaultPolicy()
	v.SetDefault("policy.unit_scale", p.UnitScale)
	v.SetDefault("policy.loan_ceiling", p.LoanCeiling)
	v.SetDefault("policy.stress_adjustment", p.StressAdjustment)
	v.SetDefault("policy.risk_threshold", p.RiskThreshold)
	v.SetDefault("policy.max_years", p.MaxYears)
	v.SetDefault("policy.savings_deposit", p.SavingsDeposit)
	v.SetDefault("policy.default_product", p.DefaultProduct)
}

// Load reads the YAML file at path, applies HOMEGOAL_* overrides and
// defaults, and validates the result. An empty path loads from the
// environment only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	return unmarshalAndValidate(v)
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
