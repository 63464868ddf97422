package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tutils/lcgviz/lcg"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:     "presets",
	Short:   "List the available parameter presets",
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := loadPresets()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tM\tA\tC\tSEED\tPERIOD\tCOVERAGE\tDESCRIPTION")
		for _, pr := range ps {
			p := pr.Params()
			seq, err := lcg.Generate(p)
			if err != nil {
				return fmt.Errorf("preset %q: %w", pr.Name, err)
			}
			st, err := lcg.Analyze(p, seq)
			if err != nil {
				return fmt.Errorf("preset %q: %w", pr.Name, err)
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f%%\t%s\n",
				pr.Name, p.M, p.A, p.C, p.Seed, st.Period, st.Coverage*100, pr.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
