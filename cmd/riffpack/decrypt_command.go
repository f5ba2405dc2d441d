package main

import (
	"github.com/MKhiriev/riff-pack/internal/app"
	"github.com/spf13/cobra"
)

func newDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <pack> <password> <out.zip>",
		Short: "Write the decrypted container of a pack",
		Long: "Write the decrypted container of a pack. The output is a standard ZIP " +
			"archive holding manifest.json and one entry per riff.",
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			stored, err := a.Decrypt(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			printStoredFile(cmd.OutOrStdout(), app.MsgContainerDecrypted, stored)
			return nil
		},
	}
}
