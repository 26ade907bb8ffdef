// Package config loads finetype's CLI-level configuration: the
// classifier artifact path, default output format, and default
// sample size. None of it is load-bearing on the core algorithms —
// every value has a built-in default, and the artifact path, taxonomy
// path, sample size and min agreement are overridable per invocation
// via flags.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is CLI-level configuration, read via Viper from (in
// ascending precedence) built-in defaults, a finetype.toml read by
// New, FINETYPE_-prefixed environment variables, and
// command-line flags bound by the caller.
type Config struct {
	Model struct {
		ArtifactPath string `mapstructure:"artifact_path"`
		Seed         int64  `mapstructure:"seed"`
	} `mapstructure:"model"`
	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
	Column struct {
		SampleSize   int     `mapstructure:"sample_size"`
		MinAgreement float64 `mapstructure:"min_agreement"`
	} `mapstructure:"column"`
	Taxonomy struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"taxonomy"`
}

// SetDefaults installs the built-in defaults onto v, mirroring the
// teacher's am.SetDefaults: one v.SetDefault call per configuration
// leaf, grouped by section.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model.artifact_path", "")
	v.SetDefault("model.seed", int64(1))
	v.SetDefault("output.format", "text")
	v.SetDefault("column.sample_size", 100)
	v.SetDefault("column.min_agreement", 0.5)
	v.SetDefault("taxonomy.path", "")
}

// New builds a Viper instance bound to FINETYPE_-prefixed environment
// variables and, if present, a finetype.toml in the current directory
// or $HOME/.finetype. No environment variable here is required;
// every one is an operator convenience over the built-in defaults.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("FINETYPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("finetype")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.finetype")
	_ = v.ReadInConfig() // absence of a config file is not an error

	return v
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
