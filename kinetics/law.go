package kinetics

import (
	"fmt"
	"strings"
)

// Law selects the rate-constant formula for electrochemical steps.
type Law int

const (
	// ButlerVolmer uses an intrinsic barrier plus a β-weighted electrochemical term.
	ButlerVolmer Law = iota
	// Marcus uses the parabolic outer-sphere activation energy.
	Marcus
	// MarcusGerischer integrates the Marcus parabola over electrode states.
	MarcusGerischer
)

// String returns the canonical name used in configuration and output.
func (l Law) String() string {
	switch l {
	case ButlerVolmer:
		return "bv"
	case Marcus:
		return "marcus"
	case MarcusGerischer:
		return "marcus-gerischer"
	default:
		return fmt.Sprintf("law(%d)", int(l))
	}
}

// ParseLaw accepts the canonical names plus a few common spellings.
func ParseLaw(s string) (Law, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bv", "butler-volmer", "butlervolmer":
		return ButlerVolmer, nil
	case "marcus":
		return Marcus, nil
	case "marcus-gerischer", "mg", "gerischer":
		return MarcusGerischer, nil
	}

	return 0, fmt.Errorf("ParseLaw(%q): %w", s, ErrUnknownLaw)
}

// NeedsLambda reports whether the law reads Step.Lambda.
func (l Law) NeedsLambda() bool { return l == Marcus || l == MarcusGerischer }

// Barrier selects how the activation energy of a BV or chemical step is built.
type Barrier int

const (
	// BEP is the linear Bell–Evans–Polanyi barrier Ea0 ± γ·ΔG.
	BEP Barrier = iota
	// Softplus is the smooth non-negative barrier ln(1+exp(±γ·ΔG))/γ.
	Softplus
)

// String returns the canonical name.
func (b Barrier) String() string {
	switch b {
	case BEP:
		return "bep"
	case Softplus:
		return "softplus"
	default:
		return fmt.Sprintf("barrier(%d)", int(b))
	}
}

// ParseBarrier parses "bep" or "softplus" (case-insensitive).
func ParseBarrier(s string) (Barrier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bep":
		return BEP, nil
	case "softplus":
		return Softplus, nil
	}

	return 0, fmt.Errorf("ParseBarrier(%q): %w", s, ErrUnknownBarrier)
}
