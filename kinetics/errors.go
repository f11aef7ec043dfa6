package kinetics

import "errors"

// Sentinel errors. Domain errors from Step.Validate and Conditions.Validate
// are configuration errors; ErrIntegrationDiverged and ErrNonFiniteRate
// describe a single evaluation point.
var (
	// ErrNonPositiveLambda indicates λ ≤ 0 for a Marcus-family law.
	ErrNonPositiveLambda = errors.New("kinetics: reorganization energy must be positive")

	// ErrIntegrationDiverged indicates the Gerischer quadrature did not reach tolerance.
	ErrIntegrationDiverged = errors.New("kinetics: quadrature did not converge")

	// ErrInvalidTemperature indicates T ≤ 0 or non-finite.
	ErrInvalidTemperature = errors.New("kinetics: temperature must be positive and finite")

	// ErrInvalidGamma indicates γ ≤ 0 for a Softplus barrier.
	ErrInvalidGamma = errors.New("kinetics: softplus gamma must be positive")

	// ErrInvalidBeta indicates β outside [0, 1].
	ErrInvalidBeta = errors.New("kinetics: symmetry factor must lie in [0, 1]")

	// ErrInvalidParameter indicates a NaN or infinite step parameter.
	ErrInvalidParameter = errors.New("kinetics: parameter is not finite")

	// ErrUnknownLaw indicates an unrecognized kinetics law.
	ErrUnknownLaw = errors.New("kinetics: unknown law")

	// ErrUnknownBarrier indicates an unrecognized barrier model.
	ErrUnknownBarrier = errors.New("kinetics: unknown barrier")

	// ErrNonFiniteRate indicates a rate constant overflowed or became NaN.
	ErrNonFiniteRate = errors.New("kinetics: rate constant is not finite")
)
