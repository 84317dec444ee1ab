// internal/cli/rank.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/repository"
)

func newRankCmd(o *options) *cobra.Command {
	var (
		names []string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank occupations by AI-R",
		Long: `Scores the profile against every occupation (or the --occupation subset)
and lists them by AI-R, highest first. Ties are broken by name.`,
		Example: `  airs rank
  airs rank --limit 3 --alpha 0.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return apperrors.NewInvalidInputError(fmt.Sprintf("limit must be non-negative, got %d", limit))
			}
			s, err := o.load(cmd)
			if err != nil {
				return err
			}
			candidates, err := repository.LoadCandidates(cmd.Context(), s.scenario.Store(), names)
			if err != nil {
				return err
			}
			results := s.engine.RankOccupations(*s.scenario.Profile, s.scenario.Skills, candidates, s.params)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return writeJSON(out, results)
			}

			t := newTable(out)
			t.row("RANK", "OCCUPATION", "AI-R", "V^R", "H^R", "SYNERGY%", "SKILLS MATCH")
			for i, r := range results {
				t.row(i+1, r.Occupation, f2(r.AIR), f2(r.VR), f2(r.HR), f2(r.SynergyPct), f2(r.Synergy.SkillsMatch))
			}
			return t.flush()
		},
	}

	cmd.Flags().StringArrayVarP(&names, "occupation", "o", nil, "occupation to rank, repeatable (default all)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many rows (0 for all)")
	return cmd
}
