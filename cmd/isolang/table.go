package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"isolang/internal/language"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var recordHeaders = []string{"Code", "Alt", "ISO 639-1", "English", "French"}

func recordRow(r language.Record) []string {
	return []string{r.Code3, dash(r.AltCode3), dash(r.Code2), r.English, r.French}
}

func renderRecords(records []language.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}
	return renderTable(recordHeaders, rows, nil)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
