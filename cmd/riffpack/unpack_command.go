package main

import (
	"github.com/spf13/cobra"
)

func newUnpackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <pack> <password> <out-dir>",
		Short: "Restore the riffs of a pack into a directory",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			result, err := a.Unpack(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			printUnpackResult(cmd.OutOrStdout(), args[2], result)
			return nil
		},
	}
}
