package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/emplace/pkg/config"
	"github.com/arthur-debert/emplace/pkg/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbosity int
	force     bool
	cfg       *config.Config

	rootCmd = &cobra.Command{
		Use:   "emplace",
		Short: "Materialize package files into environments",
		Long: `emplace is the filesystem materialization layer of a package manager:
it extracts package archives and places each file into a target environment
by hard link, symbolic link, or copy, with a clobber policy.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			var err error
			cfg, err = config.Load(config.DefaultConfigFile())
			if err != nil {
				return err
			}
			// The flag wins when given explicitly; otherwise the
			// configured default applies.
			if !cmd.Root().PersistentFlags().Changed("force") {
				force = cfg.Link.Force
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Clobber existing destination paths")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(registryCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emplace version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
