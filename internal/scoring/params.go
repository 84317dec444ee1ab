// internal/scoring/params.go
package scoring

import "fmt"

// Parameters are the caller-tunable coefficients of the composite score.
type Parameters struct {
	// Alpha weights individual readiness against market opportunity.
	Alpha float64 `json:"alpha" yaml:"alpha" mapstructure:"alpha"`
	// Beta scales the synergy bonus.
	Beta float64 `json:"beta" yaml:"beta" mapstructure:"beta"`
	// Lambda damps job posting growth.
	Lambda float64 `json:"lambda" yaml:"lambda" mapstructure:"lambda"`
	// Gamma scales regional demand influence.
	Gamma            float64 `json:"gamma" yaml:"gamma" mapstructure:"gamma"`
	MaxPossibleMatch float64 `json:"maxPossibleMatch" yaml:"maxPossibleMatch" mapstructure:"max_possible_match"`
}

func DefaultParameters() Parameters {
	return Parameters{
		Alpha:            0.6,
		Beta:             0.15,
		Lambda:           0.3,
		Gamma:            0.2,
		MaxPossibleMatch: 100,
	}
}

// Validate checks the ranges callers are expected to enforce. The formula
// functions themselves accept anything.
func (p Parameters) Validate() error {
	switch {
	case p.Alpha < 0 || p.Alpha > 1:
		return fmt.Errorf("alpha must be within [0,1], got %v", p.Alpha)
	case p.Beta < 0:
		return fmt.Errorf("beta must be non-negative, got %v", p.Beta)
	case p.Lambda < 0:
		return fmt.Errorf("lambda must be non-negative, got %v", p.Lambda)
	case p.Gamma < 0:
		return fmt.Errorf("gamma must be non-negative, got %v", p.Gamma)
	case p.MaxPossibleMatch < 0:
		return fmt.Errorf("maxPossibleMatch must be non-negative, got %v", p.MaxPossibleMatch)
	}
	return nil
}

// ParameterOverrides carries optional caller values; nil fields fall back.
// Pointers keep an explicit zero (alpha=0 scores on H^R alone) distinct from
// an absent value.
type ParameterOverrides struct {
	Alpha            *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta             *float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	Lambda           *float64 `json:"lambda,omitempty" yaml:"lambda,omitempty"`
	Gamma            *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
	MaxPossibleMatch *float64 `json:"maxPossibleMatch,omitempty" yaml:"maxPossibleMatch,omitempty"`
}

// Apply resolves the overrides on top of base.
func (o *ParameterOverrides) Apply(base Parameters) Parameters {
	if o == nil {
		return base
	}
	if o.Alpha != nil {
		base.Alpha = *o.Alpha
	}
	if o.Beta != nil {
		base.Beta = *o.Beta
	}
	if o.Lambda != nil {
		base.Lambda = *o.Lambda
	}
	if o.Gamma != nil {
		base.Gamma = *o.Gamma
	}
	if o.MaxPossibleMatch != nil {
		base.MaxPossibleMatch = *o.MaxPossibleMatch
	}
	return base
}
