package cmd

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgviz/sharecode"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcgviz",
	Short: "Linear congruential generator explorer.",
	Long: `Linear congruential generator explorer.
Generates X(n+1) = (a*X(n) + c) mod m until the first repeat and shows the
arithmetic of every step, a scatter plot of consecutive pairs and the
Hull-Dobell full-period diagnostics. For example:
  lcgviz generate --m=16 --a=5 --c=3 --seed=1
  lcgviz animate --preset=doubling --speed=0.2
  lcgviz serve --listen=0.0.0.0:8080
  lcgviz @<share token>`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], sharecode.Prefix) {
		args, err := shareArgs(os.Args[1])
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		rootCmd.SetArgs(args)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcgviz.yaml)")
	flags.String("color", "auto", "colour output: auto, on or off")
	flags.String("presets", "", "TOML file with extra presets")
	viper.BindPFlag("color", flags.Lookup("color"))
	viper.BindPFlag("presets", flags.Lookup("presets"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lcgviz" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lcgviz")
	}

	viper.SetEnvPrefix("LCGVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds the running command's flags, so commands sharing flag
// names do not steal each other's bindings.
func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}
