// Package config resolves bigcalc's run configuration from command-line
// flags, BIGCALC_* environment variables and an optional TOML file.
package config

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix is prepended to every environment override key.
	EnvPrefix = "BIGCALC_"
	// DefaultConfigFile is read from the working directory when --config is
	// not given.
	DefaultConfigFile = "bigcalc.toml"
	// AllStrategies and AllRenderers select every implementation for
	// comparison runs.
	AllStrategies = "all"
	AllRenderers  = "all"
	// MaxTimes bounds repeated squaring; the result size doubles per step.
	MaxTimes = 30

	DefaultN        uint64 = 1000
	DefaultBase     int64  = 418
	DefaultTimes           = 10
	DefaultStrategy        = AllStrategies
	DefaultRenderer        = "chunked"
	DefaultTimeout         = 5 * time.Minute
	DefaultLogLevel        = "warn"
)

// AppConfig aggregates the settings of a single bigcalc invocation.
type AppConfig struct {
	// N is the Fibonacci index computed by "fib".
	N uint64
	// Base is the seed squared by "square".
	Base int64
	// Times is the number of squarings.
	Times int
	// Strategy is a multiplication strategy name or "all".
	Strategy string
	// Cutoff is the Karatsuba cutoff in limbs.
	Cutoff int
	// Renderer is a decimal renderer name or "all".
	Renderer string
	// Binary adds the base-2 rendering to the output.
	Binary bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints only the result value.
	Quiet bool
	// Verbose prints the full value and memory statistics.
	Verbose bool
	// ShowValue prints the (possibly truncated) value.
	ShowValue bool
	// NoColor disables ANSI colors.
	NoColor bool
	// OutputFile receives the result with a metadata header.
	OutputFile string
	// MetricsFile receives Prometheus metrics in text format.
	MetricsFile string
	// LogLevel is a zerolog level name.
	LogLevel string
	// ConfigFile is the TOML file that was loaded, if any.
	ConfigFile string
}

// Default returns a configuration holding every default value.
func Default() AppConfig {
	return AppConfig{
		N:        DefaultN,
		Base:     DefaultBase,
		Times:    DefaultTimes,
		Strategy: DefaultStrategy,
		Cutoff:   bigint.DefaultKaratsubaCutoff,
		Renderer: DefaultRenderer,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// RegisterFlags binds the flags shared by every command to cfg.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy,
		"multiplication strategy ("+strings.Join(StrategyChoices(), ", ")+")")
	fs.IntVar(&cfg.Cutoff, "cutoff", cfg.Cutoff, "Karatsuba cutoff in 32-bit limbs")
	fs.StringVarP(&cfg.Renderer, "renderer", "r", cfg.Renderer,
		"decimal renderer ("+strings.Join(RendererChoices(), ", ")+")")
	fs.BoolVar(&cfg.Binary, "binary", cfg.Binary, "also print the base-2 rendering")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum duration of the run")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "print only the result")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print the full value and memory statistics")
	fs.BoolVarP(&cfg.ShowValue, "show-value", "c", cfg.ShowValue, "print the result value")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVarP(&cfg.OutputFile, "output", "o", cfg.OutputFile, "write the result to a file")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to a file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "TOML configuration file (default ./"+DefaultConfigFile+")")
}

// Resolve layers the config file and environment under the flags the user
// set explicitly, then validates the result.
// Precedence: flags > environment > config file > defaults.
func Resolve(cfg *AppConfig, fs *pflag.FlagSet) error {
	if err := applyConfigFile(cfg, fs); err != nil {
		return err
	}
	applyEnvOverrides(cfg, fs)
	return cfg.Validate()
}

// StrategyChoices lists the accepted values of --strategy.
func StrategyChoices() []string {
	return append(bigint.Strategies(), AllStrategies)
}

// RendererChoices lists the accepted values of --renderer.
func RendererChoices() []string {
	var names []string
	for _, r := range bigint.Renderers() {
		names = append(names, r.String())
	}
	return append(names, AllRenderers)
}

// Validate checks the configuration for semantic errors. Every failure is an
// apperrors.ConfigError.
func (c AppConfig) Validate() error {
	if c.Strategy != AllStrategies {
		if _, err := bigint.ParseStrategy(c.Strategy); err != nil {
			return apperrors.NewConfigError("unknown strategy %q (expected one of %s)",
				c.Strategy, strings.Join(StrategyChoices(), ", "))
		}
	}
	if c.Renderer != AllRenderers {
		if _, err := bigint.ParseRenderer(c.Renderer); err != nil {
			return apperrors.NewConfigError("unknown renderer %q (expected one of %s)",
				c.Renderer, strings.Join(RendererChoices(), ", "))
		}
	}
	if c.Cutoff < 1 {
		return apperrors.NewConfigError("cutoff must be at least 1 limb, got %d", c.Cutoff)
	}
	if c.Times < 0 || c.Times > MaxTimes {
		return apperrors.NewConfigError("times must be between 0 and %d, got %d", MaxTimes, c.Times)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// SelectedStrategies returns the strategies named by Strategy in a stable
// order. "all" expands to every implemented strategy; reserved ones are
// only run when named explicitly.
func (c AppConfig) SelectedStrategies() ([]bigint.Strategy, error) {
	if c.Strategy != AllStrategies {
		s, err := bigint.ParseStrategy(c.Strategy)
		if err != nil {
			return nil, err
		}
		return []bigint.Strategy{s}, nil
	}
	var out []bigint.Strategy
	for _, name := range bigint.Strategies() {
		s, err := bigint.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if bigint.NewMultiplier(s).Supported() != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// SelectedRenderers returns the renderers named by Renderer.
func (c AppConfig) SelectedRenderers() ([]bigint.Renderer, error) {
	if c.Renderer == AllRenderers {
		return bigint.Renderers(), nil
	}
	r, err := bigint.ParseRenderer(c.Renderer)
	if err != nil {
		return nil, err
	}
	return []bigint.Renderer{r}, nil
}

// ToMultiplierOptions converts the multiplication settings to options for
// bigint.NewMultiplier.
func (c AppConfig) ToMultiplierOptions() []bigint.MultiplierOption {
	return []bigint.MultiplierOption{bigint.WithCutoff(c.Cutoff)}
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce apperrors.ConfigError
	return errors.As(err, &ce)
}

// flagChanged reports whether any of the named flags was set on the command
// line. Flags missing from fs count as unset.
func flagChanged(fs *pflag.FlagSet, names ...string) bool {
	if fs == nil {
		return false
	}
	return slices.ContainsFunc(names, func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	})
}
