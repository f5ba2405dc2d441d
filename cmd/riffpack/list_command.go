package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pack> <password>",
		Short: "Print the manifest of a pack",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			entries, err := a.List(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, faintStyle.Render("pack is empty"))
				return nil
			}
			fmt.Fprintln(out, renderManifestTable(entries))
			return nil
		},
	}
}
