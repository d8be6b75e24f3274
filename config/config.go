package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/porglezomp/libgoscore/scoring"
)

const (
	ConfigKomi      = "komi"
	ConfigKomiColor = "komi-color"
	ConfigWorkers   = "workers"
	ConfigDebug     = "debug"
	ConfigFile      = "config"
	ConfigQuiet     = "quiet"
	ConfigHistogram = "histogram"
)

// Config is the goscore configuration. Values come from, in increasing
// order of precedence: defaults, an optional YAML config file, GOSCORE_*
// environment variables, and command-line flags.
type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigKomi, scoring.DefaultKomi.Points)
	c.SetDefault(ConfigKomiColor, scoring.DefaultKomi.Color.String())
	c.SetDefault(ConfigWorkers, 0)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigQuiet, false)
	c.SetDefault(ConfigHistogram, 0)
	c.SetDefault(ConfigFile, "")
}

// Load parses command-line arguments (without the program name) and reads
// the environment and config file. Arguments that are not flags are kept
// and returned by Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("goscore", pflag.ContinueOnError)
	fs.Float64(ConfigKomi, scoring.DefaultKomi.Points, "komi, in points; may be fractional")
	fs.String(ConfigKomiColor, scoring.DefaultKomi.Color.String(), "the color that receives komi (black or white)")
	fs.Int(ConfigWorkers, 0, "positions to score at once; 0 means one per CPU")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Bool(ConfigQuiet, false, "print results only, not boards")
	fs.Int(ConfigHistogram, 0, "draw a histogram of the batch's spreads with this many bins")
	fs.String(ConfigFile, "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("goscore")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Komi returns the configured komi.
func (c *Config) Komi() (scoring.Komi, error) {
	return scoring.NewKomi(c.GetFloat64(ConfigKomi), c.GetString(ConfigKomiColor))
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
