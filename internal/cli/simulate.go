// internal/cli/simulate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

func checkProgress(completion, mastery float64) error {
	for name, v := range map[string]float64{"completion": completion, "mastery": mastery} {
		if v < 0 || v > 1 {
			return apperrors.NewInvalidInputError(fmt.Sprintf("%s must be within [0,1], got %v", name, v))
		}
	}
	return nil
}

func newSimulateCmd(o *options) *cobra.Command {
	var (
		occupation string
		pathwayID  int
		completion float64
		mastery    float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the score after a learning pathway",
		Long: `Applies one learning pathway's dimension impacts, scaled by completion and
mastery, and reports baseline against projected V^R, Synergy% and AI-R.
H^R is unchanged by a pathway.`,
		Example: `  airs simulate --pathway 2
  airs simulate --pathway 1 --completion 0.5 --mastery 0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkProgress(completion, mastery); err != nil {
				return err
			}
			s, err := o.load(cmd)
			if err != nil {
				return err
			}
			baseline, err := s.score(cmd, occupation)
			if err != nil {
				return err
			}
			pathway, err := s.scenario.Store().GetPathway(cmd.Context(), pathwayID)
			if err != nil {
				return err
			}

			sim := s.engine.SimulatePathway(scoring.SimulationInput{
				Baseline:   baseline,
				Pathway:    pathway,
				Completion: completion,
				Mastery:    mastery,
			})

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return writeJSON(out, sim)
			}

			fmt.Fprintf(out, "%s: %s (%s)\n\n", baseline.Occupation, sim.Pathway.Name, sim.Pathway.Type)
			t := newTable(out)
			t.row("", "BASELINE", "PROJECTED", "CHANGE")
			t.row("AI fluency", f4(sim.BaselineDimensions.AIFluency), f4(sim.ProjectedDimensions.AIFluency),
				signed(sim.ProjectedDimensions.AIFluency-sim.BaselineDimensions.AIFluency))
			t.row("Domain expertise", f4(sim.BaselineDimensions.DomainExpertise), f4(sim.ProjectedDimensions.DomainExpertise),
				signed(sim.ProjectedDimensions.DomainExpertise-sim.BaselineDimensions.DomainExpertise))
			t.row("Adaptive capacity", f4(sim.BaselineDimensions.AdaptiveCapacity), f4(sim.ProjectedDimensions.AdaptiveCapacity),
				signed(sim.ProjectedDimensions.AdaptiveCapacity-sim.BaselineDimensions.AdaptiveCapacity))
			t.row("V^R", f2(sim.Baseline.VR), f2(sim.Projected.VR), signed(sim.Delta.VR))
			t.row("H^R", f2(sim.HR), f2(sim.HR), signed(0))
			t.row("Synergy%", f2(sim.Baseline.SynergyPct), f2(sim.Projected.SynergyPct), signed(sim.Delta.SynergyPct))
			t.row("AI-R", f2(sim.Baseline.AIR), f2(sim.Projected.AIR), signed(sim.Delta.AIR))
			return t.flush()
		},
	}

	cmd.Flags().StringVarP(&occupation, "occupation", "o", fixtures.DataAnalyst, "occupation name")
	cmd.Flags().IntVarP(&pathwayID, "pathway", "p", 1, "learning pathway id")
	cmd.Flags().Float64Var(&completion, "completion", 1, "fraction of the pathway completed, in [0,1]")
	cmd.Flags().Float64Var(&mastery, "mastery", 1, "mastery level reached, in [0,1]")
	return cmd
}

func newPathwaysCmd(o *options) *cobra.Command {
	var (
		occupation string
		ids        []int
		completion float64
		mastery    float64
	)

	cmd := &cobra.Command{
		Use:   "pathways",
		Short: "Compare learning pathways by AI-R gain",
		Long: `Simulates every learning pathway (or the --id subset) against the same
baseline and lists them by AI-R gain, largest first.`,
		Example: `  airs pathways
  airs pathways --id 1 --id 3 --completion 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkProgress(completion, mastery); err != nil {
				return err
			}
			s, err := o.load(cmd)
			if err != nil {
				return err
			}
			baseline, err := s.score(cmd, occupation)
			if err != nil {
				return err
			}
			pathways, err := repository.LoadPathways(cmd.Context(), s.scenario.Store(), ids)
			if err != nil {
				return err
			}
			results := s.engine.ComparePathways(baseline, pathways, completion, mastery)

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return writeJSON(out, results)
			}

			fmt.Fprintf(out, "%s: baseline AI-R %s\n\n", baseline.Occupation, f2(baseline.AIR))
			t := newTable(out)
			t.row("ID", "PATHWAY", "TYPE", "PROJECTED AI-R", "GAIN")
			for _, r := range results {
				t.row(r.Pathway.ID, r.Pathway.Name, r.Pathway.Type, f2(r.Projected.AIR), signed(r.Delta.AIR))
			}
			return t.flush()
		},
	}

	cmd.Flags().StringVarP(&occupation, "occupation", "o", fixtures.DataAnalyst, "occupation name")
	cmd.Flags().IntSliceVar(&ids, "id", nil, "pathway ids to compare (default all)")
	cmd.Flags().Float64Var(&completion, "completion", 1, "fraction of the pathway completed, in [0,1]")
	cmd.Flags().Float64Var(&mastery, "mastery", 1, "mastery level reached, in [0,1]")
	return cmd
}
