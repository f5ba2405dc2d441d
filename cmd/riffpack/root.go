package main

import (
	"fmt"

	"github.com/MKhiriev/riff-pack/internal/app"
	"github.com/MKhiriev/riff-pack/internal/config"
	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/spf13/cobra"
)

const logRole = "cli"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "riffpack <projects-dir> <password>",
		Short:         "Pack rendered riffs into an encrypted archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          exactArgs(2),
		RunE:          runPack,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newUnpackCommand())
	rootCmd.AddCommand(newDecryptCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadApp resolves the configuration from the command's flags and builds the
// application around it.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(logRole, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return app.NewApp(cfg, log), nil
}

func runPack(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Pack(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	printPackResult(cmd.OutOrStdout(), result)
	return nil
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}
