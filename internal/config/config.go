// Package config loads qlct settings with Viper from defaults, an optional
// qlct.toml and QLCT_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"qlct/internal/crypto/kem"
	"qlct/internal/errors"
	"qlct/internal/quantum"
)

// Config is the full qlct configuration.
type Config struct {
	Search   SearchConfig   `mapstructure:"search" json:"search" toml:"search" yaml:"search"`
	Sampling SamplingConfig `mapstructure:"sampling" json:"sampling" toml:"sampling" yaml:"sampling"`
	Crypto   CryptoConfig   `mapstructure:"crypto" json:"crypto" toml:"crypto" yaml:"crypto"`
	Log      LogConfig      `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

// SearchConfig sets the default search problem.
type SearchConfig struct {
	Qubits     int `mapstructure:"qubits" json:"qubits" toml:"qubits" yaml:"qubits"`
	Target     int `mapstructure:"target" json:"target" toml:"target" yaml:"target"`
	Iterations int `mapstructure:"iterations" json:"iterations" toml:"iterations" yaml:"iterations"` // oracle+diffusion rounds
	MaxQubits  int `mapstructure:"max_qubits" json:"max_qubits" toml:"max_qubits" yaml:"max_qubits"` // register size guard, memory is 16·2^n bytes
}

// SamplingConfig sets the amplitude estimator defaults.
type SamplingConfig struct {
	Shots int     `mapstructure:"shots" json:"shots" toml:"shots" yaml:"shots"`
	Seed  *uint64 `mapstructure:"seed" json:"seed,omitempty" toml:"seed,omitempty" yaml:"seed,omitempty"` // unset = fresh seed per call
}

// CryptoConfig selects the payload pipeline variant.
type CryptoConfig struct {
	KEM    string `mapstructure:"kem" json:"kem" toml:"kem" yaml:"kem"`                 // mlkem768 or stub
	KeyLen int    `mapstructure:"key_len" json:"key_len" toml:"key_len" yaml:"key_len"` // shared-secret bytes used as stream key
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" json:"json" toml:"json" yaml:"json"`
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
}

// NewViper returns a Viper with defaults and environment binding. When
// configPath is empty, qlct.toml is searched in the working directory and
// ~/.qlct; a missing file is not an error.
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("QLCT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	// sampling.seed has no default, so AutomaticEnv alone would not surface it
	_ = v.BindEnv("sampling.seed")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("qlct")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".qlct"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config %s", configPath)
		}
	}
	return v, nil
}

// Load reads and validates configuration. See NewViper for configPath.
func Load(configPath string) (*Config, error) {
	v, err := NewViper(configPath)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates configuration from v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that can never produce a valid run. Range checks
// that depend on each other (target vs qubits) are left to the engine.
func (c *Config) Validate() error {
	switch {
	case c.Search.Iterations < 1:
		return errors.Newf("search.iterations must be at least 1, got %d", c.Search.Iterations)
	case c.Search.MaxQubits < 1 || c.Search.MaxQubits > quantum.MaxQubits:
		return errors.Newf("search.max_qubits must be in 1..%d, got %d", quantum.MaxQubits, c.Search.MaxQubits)
	case c.Sampling.Shots < 1:
		return errors.Newf("sampling.shots must be at least 1, got %d", c.Sampling.Shots)
	case c.Crypto.KeyLen < 1:
		return errors.Newf("crypto.key_len must be at least 1, got %d", c.Crypto.KeyLen)
	}
	if _, err := kem.New(c.Crypto.KEM); err != nil {
		return errors.Wrap(err, "crypto.kem")
	}
	return nil
}
