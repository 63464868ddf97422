package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutils/lcgviz/sharecode"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a share token for a parameter set",
	Long: `Print a share token for a parameter set. Running "lcgviz @<token>" or opening
"/?share=<token>" on the web server restores the same parameters.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}
		tok, err := sharecode.Encode(p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), sharecode.Prefix+tok)
		return err
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)

	addParamFlags(shareCmd)
}
