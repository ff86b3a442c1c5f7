package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/gatherdb/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command. Without a subcommand it runs update.
var rootCmd = &cobra.Command{
	Use:   "gatherdb",
	Short: "gatherdb - daily gathering node snapshots",
	Long: `gatherdb records gathering node locations (herbs and ores) and writes
them to a date-stamped JSON snapshot, database_<YYYY-MM-DD>.json.

Running gatherdb with no arguments writes today's snapshot.
Re-running on the same day overwrites the file.`,
	Args:          cobra.NoArgs,
	RunE:          runUpdate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gatherdb v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.gatherdb/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	defaults := model.DefaultConfig()
	viper.SetDefault("output.dir", defaults.Output.Dir)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.gatherdb")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// GATHERDB_OUTPUT_DIR maps to output.dir
	viper.SetEnvPrefix("GATHERDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration from all viper sources
func loadConfig() model.Config {
	cfg := model.DefaultConfig()
	if dir := viper.GetString("output.dir"); dir != "" {
		cfg.Output.Dir = dir
	}
	return cfg
}
