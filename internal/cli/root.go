// internal/cli/root.go

// Package cli implements the airs command: offline AI-Readiness scoring over
// the synthetic fixtures or a scenario file, plus reference data seeding.
package cli

import (
	"github.com/spf13/cobra"

	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/internal/scoring"
)

type options struct {
	scenarioPath string
	jsonOutput   bool

	alpha            float64
	beta             float64
	lambda           float64
	gamma            float64
	maxPossibleMatch float64
}

// NewRootCmd builds the airs command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	defaults := scoring.DefaultParameters()

	root := &cobra.Command{
		Use:   "airs",
		Short: "Compute AI-Readiness scores offline",
		Long: `airs scores an individual against occupations with the AI-Readiness model:
AI-R = alpha*V^R + (1-alpha)*H^R + beta*Synergy%.

Without --scenario it uses the built-in synthetic profile, occupations and
learning pathways. A scenario file (YAML or JSON) may replace any of them.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.scenarioPath, "scenario", "s", "", "scenario file (YAML or JSON); defaults to the built-in fixtures")
	pf.BoolVar(&o.jsonOutput, "json", false, "print JSON instead of a table")
	pf.Float64Var(&o.alpha, "alpha", defaults.Alpha, "weight of V^R against H^R, in [0,1]")
	pf.Float64Var(&o.beta, "beta", defaults.Beta, "synergy bonus weight")
	pf.Float64Var(&o.lambda, "lambda", defaults.Lambda, "job posting growth damping")
	pf.Float64Var(&o.gamma, "gamma", defaults.Gamma, "regional demand scale")
	pf.Float64Var(&o.maxPossibleMatch, "max-match", defaults.MaxPossibleMatch, "skills match ceiling")

	root.AddCommand(
		newScoreCmd(o),
		newSimulateCmd(o),
		newRankCmd(o),
		newPathwaysCmd(o),
		newSeedCmd(o),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// session is the resolved input of one command run.
type session struct {
	scenario *Scenario
	params   scoring.Parameters
	engine   *scoring.Engine
}

// load resolves the scenario and parameters. Flags set on the command line
// win over the scenario's parameters, which win over the defaults.
func (o *options) load(cmd *cobra.Command) (*session, error) {
	sc, err := LoadScenario(o.scenarioPath)
	if err != nil {
		return nil, err
	}

	overrides := sc.Parameters
	if overrides == nil {
		overrides = &scoring.ParameterOverrides{}
	}
	flags := cmd.Flags()
	for name, target := range map[string]**float64{
		"alpha":     &overrides.Alpha,
		"beta":      &overrides.Beta,
		"lambda":    &overrides.Lambda,
		"gamma":     &overrides.Gamma,
		"max-match": &overrides.MaxPossibleMatch,
	} {
		if flags.Changed(name) {
			v, err := flags.GetFloat64(name)
			if err != nil {
				return nil, err
			}
			*target = &v
		}
	}

	params, err := validation.ResolveParameters(scoring.DefaultParameters(), overrides)
	if err != nil {
		return nil, err
	}
	return &session{scenario: sc, params: params, engine: scoring.NewEngine()}, nil
}
