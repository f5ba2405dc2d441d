package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/riff-pack/internal/app"
	"github.com/MKhiriev/riff-pack/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	faintStyle = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %v\n", labelStyle.Render(label), value)
}

func printStoredFile(w io.Writer, title string, f models.StoredFile) {
	fmt.Fprintln(w, titleStyle.Render(title))
	printField(w, "path", f.Path)
	printField(w, "size", fmt.Sprintf("%d bytes", f.Size))
	printField(w, "blake3", f.Fingerprint)
}

func printPackResult(w io.Writer, r app.PackResult) {
	if r.Scan.AssetCount() == 0 {
		fmt.Fprintln(w, warnStyle.Render(app.MsgNoAssetsFound))
	}

	printStoredFile(w, app.MsgPackWritten, r.Pack)
	printField(w, "groups", r.Report.Groups)
	printField(w, "riffs", len(r.Report.Entries))

	if r.DecryptedCopy != nil {
		printStoredFile(w, app.MsgDecryptedCopyWritten, *r.DecryptedCopy)
	} else {
		fmt.Fprintln(w, faintStyle.Render(app.MsgDecryptedCopySkipped))
	}

	if len(r.Scan.Skipped) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d item(s) %s:", len(r.Scan.Skipped), app.MsgItemsSkipped)))
		for _, err := range r.Scan.Skipped {
			fmt.Fprintf(w, "  %s\n", faintStyle.Render(err.Error()))
		}
	}
}

func printUnpackResult(w io.Writer, dir string, r app.UnpackResult) {
	fmt.Fprintln(w, titleStyle.Render(app.MsgAssetsExtracted))
	printField(w, "dir", dir)
	printField(w, "riffs", len(r.Paths))
}

func renderError(err error) string {
	msg := app.Message(err)
	if errors.Is(err, errUsage) {
		msg = app.MsgWrongArguments
	}
	return fmt.Sprintf("%s: %s", errorStyle.Render(msg), err)
}
