package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/bbdist/clientcli"
	"github.com/sagarc03/bbdist/config"
)

var (
	version = "dev"

	cfgFile    string
	jsonOutput bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:     "bbdist",
	Version: version,
	Short:   "Upload release files to Bitbucket downloads",
	Long: `bbdist uploads the files produced by a packaging pipeline to the
downloads area of a Bitbucket repository and records the download URL.

Credentials not given by flag, environment or config file are prompted for.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./bbdist.yaml or ~/.bbdist/bbdist.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print the download URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: BBDIST_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (env: BBDIST_LOG_FORMAT)")

	rootCmd.AddCommand(uploadCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration for the command being run and stores it
// in the command context. Only commands that talk to Bitbucket use it, so
// help and completion work without a configured repository.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var files []string
	if cfgFile != "" {
		files = []string{cfgFile}
	}

	cfg, err := config.Load(files, cmd.Flags())
	if err != nil {
		return err
	}

	setupLogging(cfg)
	cmd.SetContext(config.WithContext(cmd.Context(), cfg))
	return nil
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() clientcli.Formatter {
	return clientcli.NewFormatter(jsonOutput, quiet)
}
