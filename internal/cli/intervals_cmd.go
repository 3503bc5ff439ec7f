package cli

import (
	"fmt"

	"github.com/alexanderramin/studytimer/internal/cli/formatter"
	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/spf13/cobra"
)

func newIntervalsCmd(a *App) *cobra.Command {
	var difficulty domain.Difficulty

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Show the review interval table",
		Long: "Show how long to wait after each review before a subject is due again.\n" +
			"Column #n applies after the n-th review; later reviews reuse the last column.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := domain.Difficulties
			if difficulty != "" {
				ds = []domain.Difficulty{difficulty}
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIntervals(ds))
			return err
		},
	}
	cmd.Flags().Var(newDifficultyValue(&difficulty), "difficulty", "Only show one difficulty (easy, medium, hard)")

	return cmd
}
