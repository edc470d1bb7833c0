package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// envOverride maps an environment key (without the BIGCALC_ prefix) to the
// flag it shadows and the setter applying its value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides lists every supported environment variable. Unparsable
// values are ignored and the previous value is kept.
var envOverrides = []envOverride{
	{"N", "n", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.N = parsed
		}
	}},
	{"BASE", "base", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Base = parsed
		}
	}},
	{"TIMES", "times", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Times = parsed
		}
	}},
	{"CUTOFF", "cutoff", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cutoff = parsed
		}
	}},

	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"STRATEGY", "strategy", func(c *AppConfig, v string) { c.Strategy = v }},
	{"RENDERER", "renderer", func(c *AppConfig, v string) { c.Renderer = v }},
	{"OUTPUT", "output", func(c *AppConfig, v string) { c.OutputFile = v }},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) { c.LogLevel = v }},

	{"BINARY", "binary", func(c *AppConfig, v string) { c.Binary = parseBoolEnv(v, c.Binary) }},
	{"QUIET", "quiet", func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"SHOW_VALUE", "show-value", func(c *AppConfig, v string) { c.ShowValue = parseBoolEnv(v, c.ShowValue) }},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive). Anything else returns defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides copies BIGCALC_* values into cfg for every flag the user
// did not set on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if flagChanged(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
