package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// fileConfig mirrors the TOML layout of bigcalc.toml. Pointer fields
// distinguish absent keys from zero values.
type fileConfig struct {
	Run struct {
		N       *int64  `toml:"n"`
		Base    *int64  `toml:"base"`
		Times   *int64  `toml:"times"`
		Timeout *string `toml:"timeout"`
	} `toml:"run"`
	Multiply struct {
		Strategy *string `toml:"strategy"`
		Cutoff   *int64  `toml:"cutoff"`
	} `toml:"multiply"`
	Render struct {
		Renderer *string `toml:"renderer"`
		Binary   *bool   `toml:"binary"`
	} `toml:"render"`
	Output struct {
		File        *string `toml:"file"`
		MetricsFile *string `toml:"metrics_file"`
		Quiet       *bool   `toml:"quiet"`
		Verbose     *bool   `toml:"verbose"`
		ShowValue   *bool   `toml:"show_value"`
		NoColor     *bool   `toml:"no_color"`
		LogLevel    *string `toml:"log_level"`
	} `toml:"output"`
}

// applyConfigFile loads cfg.ConfigFile, or DefaultConfigFile when it exists,
// and applies every key whose flag was not set on the command line.
func applyConfigFile(cfg *AppConfig, flags *pflag.FlagSet) error {
	path := cfg.ConfigFile
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewConfigError("reading config file: %v", err)
	}
	var fc fileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return apperrors.NewConfigError("parsing %s: %v", path, err)
	}
	cfg.ConfigFile = path
	return fc.apply(cfg, flags)
}

// apply copies the present keys into cfg, narrowing TOML integers to the
// field types.
func (fc *fileConfig) apply(cfg *AppConfig, flags *pflag.FlagSet) error {
	set := func(flag string) bool { return !flagChanged(flags, flag) }

	if v := fc.Run.N; v != nil && set("n") {
		n, err := safecast.Conv[uint64](*v)
		if err != nil {
			return apperrors.NewConfigError("run.n: %v", err)
		}
		cfg.N = n
	}
	if v := fc.Run.Base; v != nil && set("base") {
		cfg.Base = *v
	}
	if v := fc.Run.Times; v != nil && set("times") {
		t, err := safecast.Conv[int](*v)
		if err != nil {
			return apperrors.NewConfigError("run.times: %v", err)
		}
		cfg.Times = t
	}
	if v := fc.Run.Timeout; v != nil && set("timeout") {
		d, err := time.ParseDuration(*v)
		if err != nil {
			return apperrors.NewConfigError("run.timeout: %v", err)
		}
		cfg.Timeout = d
	}
	if v := fc.Multiply.Strategy; v != nil && set("strategy") {
		cfg.Strategy = *v
	}
	if v := fc.Multiply.Cutoff; v != nil && set("cutoff") {
		c, err := safecast.Conv[int](*v)
		if err != nil {
			return apperrors.NewConfigError("multiply.cutoff: %v", err)
		}
		cfg.Cutoff = c
	}
	if v := fc.Render.Renderer; v != nil && set("renderer") {
		cfg.Renderer = *v
	}
	if v := fc.Render.Binary; v != nil && set("binary") {
		cfg.Binary = *v
	}
	applyString(&cfg.OutputFile, fc.Output.File, set("output"))
	applyString(&cfg.MetricsFile, fc.Output.MetricsFile, set("metrics-file"))
	applyString(&cfg.LogLevel, fc.Output.LogLevel, set("log-level"))
	applyBool(&cfg.Quiet, fc.Output.Quiet, set("quiet"))
	applyBool(&cfg.Verbose, fc.Output.Verbose, set("verbose"))
	applyBool(&cfg.ShowValue, fc.Output.ShowValue, set("show-value"))
	applyBool(&cfg.NoColor, fc.Output.NoColor, set("no-color"))
	return nil
}

func applyString(dst, v *string, ok bool) {
	if v != nil && ok {
		*dst = *v
	}
}

func applyBool(dst, v *bool, ok bool) {
	if v != nil && ok {
		*dst = *v
	}
}

// WriteExample writes a commented config file holding cfg's values.
func WriteExample(path string, cfg AppConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	var fc fileConfig
	n, err := safecast.Conv[int64](cfg.N)
	if err != nil {
		return fmt.Errorf("run.n: %w", err)
	}
	times, cutoff, timeout := int64(cfg.Times), int64(cfg.Cutoff), cfg.Timeout.String()
	fc.Run.N, fc.Run.Base, fc.Run.Times, fc.Run.Timeout = &n, &cfg.Base, &times, &timeout
	fc.Multiply.Strategy, fc.Multiply.Cutoff = &cfg.Strategy, &cutoff
	fc.Render.Renderer, fc.Render.Binary = &cfg.Renderer, &cfg.Binary
	fc.Output.LogLevel = &cfg.LogLevel

	if _, err := fmt.Fprintln(f, "# bigcalc configuration. Command-line flags and BIGCALC_* variables take precedence."); err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
