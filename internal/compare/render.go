package compare

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Column width limits for the rendered comparison table.
const (
	attributeColumnWidth = 24
	valueColumnWidth     = 48
)

// Render draws the comparison as a table: one header row with the two device
// titles, then per category a merged sub-header and its attribute rows.
func Render(w io.Writer, titleA, titleB string, sections []CategorySection) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: attributeColumnWidth},
		{Number: 2, WidthMax: valueColumnWidth},
		{Number: 3, WidthMax: valueColumnWidth},
	})

	t.AppendHeader(table.Row{"", titleA, titleB})

	for _, section := range sections {
		t.AppendRow(
			table.Row{section.Name, section.Name, section.Name},
			table.RowConfig{AutoMerge: true, AutoMergeAlign: text.AlignCenter},
		)
		for _, row := range section.Rows {
			t.AppendRow(table.Row{row.Attribute, row.ValueA, row.ValueB})
		}
	}

	t.Render()
}
