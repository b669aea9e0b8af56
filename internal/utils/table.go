package utils

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColumnAlignment is the horizontal alignment of a table column.
type ColumnAlignment int

const (
	// AlignLeft aligns cells to the left.
	AlignLeft ColumnAlignment = iota
	// AlignRight aligns cells to the right.
	AlignRight
)

// RenderTable renders rows as a rounded table. Missing cells are left blank,
// columns without an alignment are left-aligned, and a nil footer is omitted.
func RenderTable(headers []string, rows [][]string, footer []string, aligns []ColumnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))

	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}

	if footer != nil {
		tw.AppendFooter(toRow(footer, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)

	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}

		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}

	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)

	for i := range columns {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}

	return row
}
