package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/render"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sequence and print its analysis",
	Long: `Generate X(n+1) = (a*X(n) + c) mod m from the seed until the first repeated
value, then print the sequence, its period and coverage, the parameter checks,
the step derivations and the spectral scatter plot.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}

		var genOpts []lcg.GenerateOption
		if n := viper.GetInt("max-length"); n > 0 {
			genOpts = append(genOpts, lcg.WithMaxLength(n))
		}
		rep, err := render.NewReport(p, genOpts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts, err := renderOptions(out)
		if err != nil {
			return err
		}
		return render.Write(viper.GetString("format"), out, rep, opts...)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addParamFlags(generateCmd)
	generateCmd.Flags().IntP("max-length", "n", 0, "stop after this many values (default m+1)")
	generateCmd.Flags().StringP("format", "f", "text", fmt.Sprintf("output format: %s", strings.Join(render.Formats(), ", ")))
}
