// internal/cli/score.go
package cli

import (
	"github.com/spf13/cobra"

	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

func newScoreCmd(o *options) *cobra.Command {
	var occupation string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score the profile against one occupation",
		Long: `Computes V^R, H^R, Synergy% and AI-R for the scenario profile against one
occupation, with the readiness dimensions and opportunity drivers behind them.`,
		Example: `  airs score
  airs score --occupation "Data Scientist" --alpha 0.5
  airs score -s scenario.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := o.load(cmd)
			if err != nil {
				return err
			}
			result, err := s.score(cmd, occupation)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return writeJSON(out, result)
			}

			t := newTable(out)
			t.row("Occupation", result.Occupation)
			t.row("AI-R", f2(result.AIR))
			t.row("V^R", f2(result.VR))
			t.row("H^R", f2(result.HR))
			t.row("Synergy%", f2(result.SynergyPct))
			t.row("")
			t.row("AI fluency", f4(result.Readiness.Dimensions.AIFluency))
			t.row("Domain expertise", f4(result.Readiness.Dimensions.DomainExpertise))
			t.row("Adaptive capacity", f4(result.Readiness.Dimensions.AdaptiveCapacity))
			if !result.Readiness.EducationRecognized {
				t.row("Education", "unrecognized, scored as 0")
			}
			t.row("")
			drivers := result.Opportunity.DriverPercentages()
			t.row("AI enhancement potential", f2(drivers["aiEnhancementPotential"])+"%")
			t.row("Job growth projection", f2(drivers["jobGrowthProjection"])+"%")
			t.row("Wage premium", f2(drivers["wagePremium"])+"%")
			t.row("Entry accessibility", f2(drivers["entryAccessibility"])+"%")
			t.row("")
			t.row("Skills match", f2(result.Synergy.SkillsMatch))
			t.row("Alignment factor", f4(result.Synergy.AlignmentFactor))
			return t.flush()
		},
	}

	cmd.Flags().StringVarP(&occupation, "occupation", "o", fixtures.DataAnalyst, "occupation name")
	return cmd
}

func (s *session) score(cmd *cobra.Command, occupation string) (scoring.ScoreResult, error) {
	candidate, err := repository.LoadCandidate(cmd.Context(), s.scenario.Store(), occupation)
	if err != nil {
		return scoring.ScoreResult{}, err
	}
	return s.engine.Score(scoring.ScoreInput{
		Profile:        *s.scenario.Profile,
		Occupation:     candidate.Occupation,
		Skills:         s.scenario.Skills,
		RequiredSkills: candidate.RequiredSkills,
		Parameters:     s.params,
	}), nil
}
