// Package config builds runtime configuration from the environment plus an
// optional YAML policy file, so main stays lean.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures process-level configuration sourced from the environment.
type Server struct {
	Addr            string
	PostgresURL     string
	RedisURL        string
	KafkaSeeds      []string
	ConfirmationKey string
	PolicyFile      string
	ShutdownTimeout time.Duration
}

// Policy captures registration policy knobs sourced from the YAML policy
// file. Zero values fall back to defaults at load time.
type Policy struct {
	NicknameMaxLength int
	PasswordMinLength int
	ConfirmationTTL   time.Duration
	DisposableDomains []string
}

// UnmarshalYAML decodes the policy file, parsing durations from strings like
// "24h" since yaml.v3 has no native time.Duration support.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		NicknameMaxLength int      `yaml:"nickname_max_length"`
		PasswordMinLength int      `yaml:"password_min_length"`
		ConfirmationTTL   string   `yaml:"confirmation_ttl"`
		DisposableDomains []string `yaml:"disposable_domains"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.NicknameMaxLength = raw.NicknameMaxLength
	p.PasswordMinLength = raw.PasswordMinLength
	p.DisposableDomains = raw.DisposableDomains
	if raw.ConfirmationTTL != "" {
		d, err := time.ParseDuration(raw.ConfirmationTTL)
		if err != nil {
			return fmt.Errorf("confirmation_ttl: %w", err)
		}
		p.ConfirmationTTL = d
	}
	return nil
}

const (
	defaultNicknameMaxLength = 20
	defaultPasswordMinLength = 10
	defaultConfirmationTTL   = 24 * time.Hour
)

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("REGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	shutdown := 10 * time.Second
	if raw := os.Getenv("REGATE_SHUTDOWN_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			shutdown = time.Duration(secs) * time.Second
		}
	}

	var seeds []string
	if raw := os.Getenv("REGATE_KAFKA_SEEDS"); raw != "" {
		for _, seed := range strings.Split(raw, ",") {
			if seed = strings.TrimSpace(seed); seed != "" {
				seeds = append(seeds, seed)
			}
		}
	}

	confirmationKey := os.Getenv("REGATE_CONFIRMATION_KEY")
	if confirmationKey == "" {
		// Dev default; must be overridden in production.
		confirmationKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:            addr,
		PostgresURL:     os.Getenv("REGATE_POSTGRES_URL"),
		RedisURL:        os.Getenv("REGATE_REDIS_URL"),
		KafkaSeeds:      seeds,
		ConfirmationKey: confirmationKey,
		PolicyFile:      os.Getenv("REGATE_POLICY_FILE"),
		ShutdownTimeout: shutdown,
	}
}

// LoadPolicy reads the YAML policy file. An empty path returns defaults, so
// dev setups work with no file at all.
func LoadPolicy(path string) (Policy, error) {
	policy := Policy{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Policy{}, fmt.Errorf("read policy file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &policy); err != nil {
			return Policy{}, fmt.Errorf("parse policy file: %w", err)
		}
	}
	return policy.withDefaults(), nil
}

func (p Policy) withDefaults() Policy {
	if p.NicknameMaxLength <= 0 {
		p.NicknameMaxLength = defaultNicknameMaxLength
	}
	if p.PasswordMinLength <= 0 {
		p.PasswordMinLength = defaultPasswordMinLength
	}
	if p.ConfirmationTTL <= 0 {
		p.ConfirmationTTL = defaultConfirmationTTL
	}
	return p
}
