// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvunits/storage"
)

const envPrefix = "LVUNITS"

// Flag and configuration keys. A key k is also read from LVUNITS_<K> with
// dashes replaced by underscores, and from the --config YAML file.
const (
	keyConfig         = "config"
	keyLogLevel       = "log-level"
	keyLogEncoding    = "log-encoding"
	keyLogDevelopment = "log-development"
	keyRows           = "rows"
	keyCols           = "cols"
	keyDensity        = "density"
	keySeed           = "seed"
	keyKind           = "kind"
	keyWorkers        = "workers"
	keyThreshold      = "threshold"
	keyRounds         = "rounds"
)

var errBadConfig = errors.New("invalid configuration")

// config is the merged flag/env/file configuration of one command run.
type config struct {
	Log       logConfig `mapstructure:",squash"`
	Rows      int       `mapstructure:"rows"`
	Cols      int       `mapstructure:"cols"`
	Density   float64   `mapstructure:"density"`
	Seed      uint64    `mapstructure:"seed"`
	Kind      string    `mapstructure:"kind"`
	Workers   int       `mapstructure:"workers"`
	Threshold int       `mapstructure:"threshold"`
	Rounds    int       `mapstructure:"rounds"`
}

// addPersistentFlags registers the flags shared by every sub-command.
func addPersistentFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String(keyConfig, "", "YAML configuration file")
	f.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	f.String(keyLogEncoding, "console", "log encoding (json or console)")
	f.Bool(keyLogDevelopment, false, "development logging")
	f.Int(keyWorkers, storage.DefaultWorkers, "dense kernel workers (0 = GOMAXPROCS)")
	f.Int(keyThreshold, storage.DefaultParallelThreshold, "cell count at which dense kernels go parallel")
}

// addShapeFlags registers the random-storage shape flags.
func addShapeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int(keyRows, 512, "rows")
	f.Int(keyCols, 512, "columns")
	f.Float64(keyDensity, 0.05, "fraction of non-zero cells in [0,1]")
	f.Uint64(keySeed, 1, "random seed")
}

// loadConfig merges, lowest first: flag defaults, config file, environment,
// explicitly set flags.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, err
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return fmt.Errorf("shape %dx%d: %w", c.Rows, c.Cols, errBadConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %g: %w", c.Density, errBadConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d: %w", c.Workers, errBadConfig)
	case c.Threshold < 0:
		return fmt.Errorf("threshold %d: %w", c.Threshold, errBadConfig)
	case c.Rounds < 0:
		return fmt.Errorf("rounds %d: %w", c.Rounds, errBadConfig)
	}
	if c.Kind != "" {
		if _, err := parseKind(c.Kind); err != nil {
			return err
		}
	}

	return nil
}

// storageOptions turns the kernel settings into storage options.
func (c config) storageOptions() []storage.Option {
	return []storage.Option{
		storage.WithWorkers(c.Workers),
		storage.WithParallelThreshold(c.Threshold),
	}
}

func parseKind(s string) (storage.Kind, error) {
	switch strings.ToLower(s) {
	case "dense":
		return storage.KindDense, nil
	case "sparse":
		return storage.KindSparse, nil
	default:
		return 0, fmt.Errorf("kind %q: %w", s, errBadConfig)
	}
}
