// Package config provides configuration management for fleetsum.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with FS_ prefix)
//   - .env files
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ./configs/config.yaml, ~/.fleetsum/config.yaml, /etc/fleetsum/config.yaml)
//  3. .env files
//  4. Environment variables (FS_ prefix)
//
// # Usage Example
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Reading %s\n", cfg.Input.FleetState)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use FS_ prefix and underscores for nested keys:
//   - FS_INPUT_FLEET_STATE=/var/lib/fleet/FleetState.txt
//   - FS_OUTPUT_STATISTICS=/var/lib/fleet/Statistics.txt
//   - FS_AUDIT_MAX_FINDINGS=50
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration structure for fleetsum.
type Config struct {
	// Input contains fleet-state report source settings
	Input InputConfig `mapstructure:"input"`

	// Output contains statistics destination settings
	Output OutputConfig `mapstructure:"output"`

	// Audit contains audit scan settings
	Audit AuditConfig `mapstructure:"audit"`

	// Log contains logging settings
	Log LogConfig `mapstructure:"log"`
}

// InputConfig contains fleet-state report source settings.
type InputConfig struct {
	// FleetState is the path of the fleet-state report to read
	FleetState string `mapstructure:"fleet_state" validate:"required"`
}

// OutputConfig contains statistics destination settings.
type OutputConfig struct {
	// Statistics is the path the summary report is written to
	Statistics string `mapstructure:"statistics" validate:"required"`

	// Stdout additionally prints the summary lines to standard output
	Stdout bool `mapstructure:"stdout"`
}

// AuditConfig contains audit scan settings.
type AuditConfig struct {
	// MaxFindings caps the findings collected per scan; 0 means unlimited
	MaxFindings int `mapstructure:"max_findings" validate:"gte=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Prefix is prepended to every audit service log line
	Prefix string `mapstructure:"prefix"`
}

var cfg *Config

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (FS_ prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.fleetsum")
		v.AddConfigPath("/etc/fleetsum")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file may be absent (run on defaults); any
		// other read problem is fatal either way.
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("FS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.fleet_state", "FleetState.txt")

	v.SetDefault("output.statistics", "Statistics.txt")
	v.SetDefault("output.stdout", false)

	v.SetDefault("audit.max_findings", 0)

	v.SetDefault("log.prefix", "[fleetsum] ")
}

// validate checks the struct tags plus the constraints tags cannot express.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%s failed on the '%s' rule", strings.ToLower(e.Namespace()), e.Tag())
		}
		return err
	}

	if cfg.Input.FleetState == cfg.Output.Statistics {
		return fmt.Errorf("input and output must not be the same file: %s", cfg.Input.FleetState)
	}

	return nil
}

func Get() *Config {
	return cfg
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
