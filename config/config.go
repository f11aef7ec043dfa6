// Package config loads and validates run configuration and converts it into
// a sweep.Config.
//
// Sources, lowest precedence first: built-in defaults, a YAML/TOML/JSON file
// (format from the extension), and AOMKIN_* environment variables with "."
// replaced by "_" (AOMKIN_CONDITIONS_TEMPERATURE=310).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrValidation wraps every field-level validation failure.
var ErrValidation = errors.New("config: validation failed")

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "AOMKIN"

// Config is the complete run configuration.
type Config struct {
	Model      ModelConfig           `mapstructure:"model" yaml:"model"`
	Conditions ConditionsConfig      `mapstructure:"conditions" yaml:"conditions"`
	Steps      map[string]StepConfig `mapstructure:"steps" yaml:"steps" validate:"required,min=1,dive"`
	Chemical   ChemicalConfig        `mapstructure:"chemical" yaml:"chemical"`
	Sweep      SweepConfig           `mapstructure:"sweep" yaml:"sweep"`
	Output     OutputConfig          `mapstructure:"output" yaml:"output"`
	Log        LogConfig             `mapstructure:"log" yaml:"log"`
}

// ModelConfig selects the mechanism and the rate law.
type ModelConfig struct {
	Network         string `mapstructure:"network" yaml:"network" validate:"required,oneof=ER LH er lh"`
	Law             string `mapstructure:"law" yaml:"law" validate:"required,oneof=bv marcus marcus-gerischer"`
	Barrier         string `mapstructure:"barrier" yaml:"barrier" validate:"required,oneof=bep softplus"`
	ChemicalBarrier string `mapstructure:"chemical_barrier" yaml:"chemical_barrier" validate:"required,oneof=bep softplus"`
}

// ConditionsConfig holds the run-wide scalars.
type ConditionsConfig struct {
	Temperature float64 `mapstructure:"temperature" yaml:"temperature" validate:"required,gt=0"`
	DeltaGw     float64 `mapstructure:"dgw" yaml:"dgw" validate:"required"`
	Ea0         float64 `mapstructure:"ea0" yaml:"ea0" validate:"gte=0"`
}

// StepConfig holds the parameters of one electrochemical step.
type StepConfig struct {
	DeltaG float64 `mapstructure:"dg" yaml:"dg"`
	Z      float64 `mapstructure:"z" yaml:"z" validate:"required"`
	Gamma  float64 `mapstructure:"gamma" yaml:"gamma"`
	Beta   float64 `mapstructure:"beta" yaml:"beta" validate:"gte=0,lte=1"`
	Lambda float64 `mapstructure:"lambda" yaml:"lambda" validate:"gte=0"`
}

// ChemicalConfig holds the parameters of the LH chemical step 5.
type ChemicalConfig struct {
	DeltaG float64 `mapstructure:"dg" yaml:"dg"`
	Gamma  float64 `mapstructure:"gamma" yaml:"gamma"`
	Ea0    float64 `mapstructure:"ea0" yaml:"ea0" validate:"gte=0"`
}

// AxisConfig is an inclusive start/end/step range.
type AxisConfig struct {
	Start float64 `mapstructure:"start" yaml:"start"`
	End   float64 `mapstructure:"end" yaml:"end" validate:"gtefield=Start"`
	Step  float64 `mapstructure:"step" yaml:"step" validate:"gt=0"`
}

// SweepConfig selects the sweep mode and its axes. FixedPH is used by the η
// sweep and FixedEta by the pH sweep.
type SweepConfig struct {
	Mode     string     `mapstructure:"mode" yaml:"mode" validate:"required,oneof=eta ph 2d"`
	FixedEta float64    `mapstructure:"fixed_eta" yaml:"fixed_eta"`
	FixedPH  float64    `mapstructure:"fixed_ph" yaml:"fixed_ph" validate:"gte=0,lte=14"`
	Eta      AxisConfig `mapstructure:"eta" yaml:"eta"`
	PH       AxisConfig `mapstructure:"ph" yaml:"ph"`
	Workers  int        `mapstructure:"workers" yaml:"workers" validate:"gte=0"`
}

// OutputConfig selects where results go. Empty paths disable an output.
type OutputConfig struct {
	Format  string `mapstructure:"format" yaml:"format" validate:"required,oneof=csv tsv jsonl"`
	Path    string `mapstructure:"path" yaml:"path"`
	Store   string `mapstructure:"store" yaml:"store"`
	Metrics string `mapstructure:"metrics" yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// Load reads defaults, then the file at path (skipped when empty), then the
// environment, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// setDefaults registers every leaf key so that file and environment values
// merge per key rather than per section.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("model.network", d.Model.Network)
	v.SetDefault("model.law", d.Model.Law)
	v.SetDefault("model.barrier", d.Model.Barrier)
	v.SetDefault("model.chemical_barrier", d.Model.ChemicalBarrier)

	v.SetDefault("conditions.temperature", d.Conditions.Temperature)
	v.SetDefault("conditions.dgw", d.Conditions.DeltaGw)
	v.SetDefault("conditions.ea0", d.Conditions.Ea0)

	for id, s := range d.Steps {
		key := "steps." + id + "."
		v.SetDefault(key+"dg", s.DeltaG)
		v.SetDefault(key+"z", s.Z)
		v.SetDefault(key+"gamma", s.Gamma)
		v.SetDefault(key+"beta", s.Beta)
		v.SetDefault(key+"lambda", s.Lambda)
	}

	v.SetDefault("chemical.dg", d.Chemical.DeltaG)
	v.SetDefault("chemical.gamma", d.Chemical.Gamma)
	v.SetDefault("chemical.ea0", d.Chemical.Ea0)

	v.SetDefault("sweep.mode", d.Sweep.Mode)
	v.SetDefault("sweep.fixed_eta", d.Sweep.FixedEta)
	v.SetDefault("sweep.fixed_ph", d.Sweep.FixedPH)
	v.SetDefault("sweep.eta.start", d.Sweep.Eta.Start)
	v.SetDefault("sweep.eta.end", d.Sweep.Eta.End)
	v.SetDefault("sweep.eta.step", d.Sweep.Eta.Step)
	v.SetDefault("sweep.ph.start", d.Sweep.PH.Start)
	v.SetDefault("sweep.ph.end", d.Sweep.PH.End)
	v.SetDefault("sweep.ph.step", d.Sweep.PH.Step)
	v.SetDefault("sweep.workers", d.Sweep.Workers)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.store", d.Output.Store)
	v.SetDefault("output.metrics", d.Output.Metrics)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
