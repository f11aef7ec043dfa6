package config

import "github.com/katalvlaran/aomkin/builder"

// Default parameter values.
const (
	DefaultTemperature   = 298.15
	DefaultDeltaGw       = 0.8277
	DefaultEa0           = 0.5
	DefaultDeltaG        = 0.1
	DefaultGamma         = 0.5
	DefaultSoftplusGamma = 1.3863
	DefaultBeta          = 0.5
	DefaultLambda        = 1.0
	DefaultChemicalDG    = -0.2
)

// stepIDs lists every electrochemical step of the built-in mechanisms.
var stepIDs = []string{
	builder.Step1, builder.Step2, builder.Step3, builder.Step4,
	builder.Step21, builder.Step22, builder.Step31, builder.Step32,
}

// Default returns the built-in configuration: ER, Butler-Volmer/BEP, an η
// sweep from −1 to 1 V at pH 0.
func Default() Config {
	steps := make(map[string]StepConfig, len(stepIDs))
	for _, id := range stepIDs {
		steps[id] = StepConfig{DeltaG: DefaultDeltaG, Z: 1, Gamma: DefaultGamma, Beta: DefaultBeta, Lambda: DefaultLambda}
	}

	return Config{
		Model: ModelConfig{Network: builder.NameER, Law: "bv", Barrier: "bep", ChemicalBarrier: "bep"},
		Conditions: ConditionsConfig{
			Temperature: DefaultTemperature,
			DeltaGw:     DefaultDeltaGw,
			Ea0:         DefaultEa0,
		},
		Steps:    steps,
		Chemical: ChemicalConfig{DeltaG: DefaultChemicalDG, Gamma: DefaultGamma, Ea0: DefaultEa0},
		Sweep: SweepConfig{
			Mode:     "eta",
			FixedEta: 0.5,
			FixedPH:  0,
			Eta:      AxisConfig{Start: -1, End: 1, Step: 0.01},
			PH:       AxisConfig{Start: 0, End: 14, Step: 1},
			Workers:  1,
		},
		Output: OutputConfig{Format: "csv"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// UseSoftplusDefaults switches the barriers to Softplus and replaces the
// BEP default γ with the Softplus default on every step still at it.
func (c *Config) UseSoftplusDefaults() {
	c.Model.Barrier = "softplus"
	c.Model.ChemicalBarrier = "softplus"
	for id, s := range c.Steps {
		if s.Gamma == DefaultGamma {
			s.Gamma = DefaultSoftplusGamma
			c.Steps[id] = s
		}
	}
	if c.Chemical.Gamma == DefaultGamma {
		c.Chemical.Gamma = DefaultSoftplusGamma
	}
}
