package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MKhiriev/riff-pack/internal/app"
)

// fingerprintWidth is the number of hex digits of an asset fingerprint shown
// in the manifest table.
const fingerprintWidth = 12

type manifestColumn struct {
	header string
	align  text.Align
	value  func(e app.ListedEntry) string
	merge  bool
}

var manifestColumns = []manifestColumn{
	{header: "Group", align: text.AlignRight, merge: true, value: func(e app.ListedEntry) string {
		return strconv.Itoa(e.Entry.GroupKey)
	}},
	{header: "Index", align: text.AlignRight, value: func(e app.ListedEntry) string {
		return strconv.Itoa(e.Entry.Index)
	}},
	{header: "Label", align: text.AlignLeft, value: func(e app.ListedEntry) string {
		return e.Entry.Label
	}},
	{header: "Status", align: text.AlignLeft, value: func(e app.ListedEntry) string {
		return e.Entry.Status.String()
	}},
	{header: "Size", align: text.AlignRight, value: func(e app.ListedEntry) string {
		return strconv.Itoa(e.Size)
	}},
	{header: "BLAKE3", align: text.AlignLeft, value: func(e app.ListedEntry) string {
		if len(e.Fingerprint) > fingerprintWidth {
			return e.Fingerprint[:fingerprintWidth]
		}
		return e.Fingerprint
	}},
	{header: "ID", align: text.AlignLeft, value: func(e app.ListedEntry) string {
		return e.Entry.ID
	}},
}

// renderManifestTable renders one row per entry in manifest order with the
// group cell merged across consecutive rows of the same tempo. The footer
// carries the riff count and the total asset size. No entries render as "".
func renderManifestTable(entries []app.ListedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := make(table.Row, 0, len(manifestColumns))
	for _, c := range manifestColumns {
		header = append(header, c.header)
	}
	tw.AppendHeader(header)

	total := 0
	for _, e := range entries {
		row := make(table.Row, 0, len(manifestColumns))
		for _, c := range manifestColumns {
			row = append(row, c.value(e))
		}
		tw.AppendRow(row)
		total += e.Size
	}

	footer := make(table.Row, len(manifestColumns))
	for i, c := range manifestColumns {
		switch c.header {
		case "Label":
			footer[i] = fmt.Sprintf("%d riff(s)", len(entries))
		case "Size":
			footer[i] = strconv.Itoa(total)
		default:
			footer[i] = ""
		}
	}
	tw.AppendFooter(footer)

	configs := make([]table.ColumnConfig, 0, len(manifestColumns))
	for i, c := range manifestColumns {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       c.align,
			AlignHeader: text.AlignLeft,
			AlignFooter: c.align,
			AutoMerge:   c.merge,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
