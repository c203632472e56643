package config

import (
	"github.com/spf13/viper"

	"qlct/internal/crypto/kem"
	"qlct/internal/engine"
	"qlct/internal/pipeline"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Search defaults: 3 qubits searching for |101⟩, one Grover round
	v.SetDefault("search.qubits", 3)
	v.SetDefault("search.target", 5)
	v.SetDefault("search.iterations", 1)
	v.SetDefault("search.max_qubits", engine.DefaultMaxQubits)

	// Sampling defaults
	// sampling.seed stays unset so every estimate draws a fresh seed
	v.SetDefault("sampling.shots", 2000)

	// Crypto defaults
	v.SetDefault("crypto.kem", kem.NameMLKEM768)
	v.SetDefault("crypto.key_len", pipeline.DefaultKeyLen)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
