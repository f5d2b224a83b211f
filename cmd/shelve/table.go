package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"shelve/internal/category"
)

// renderCategoryTable lays out the category set as a rounded table with
// the extensions column wrapped so wide categories stay readable.
func renderCategoryTable(categories []category.Category) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"CATEGORY", "EXTENSIONS", "COUNT"})

	for _, c := range categories {
		tw.AppendRow(table.Row{c.Name, strings.Join(c.Extensions, " "), strconv.Itoa(len(c.Extensions))})
	}
	tw.AppendRow(table.Row{category.Fallback, "(everything else)", ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 60},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
