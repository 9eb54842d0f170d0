package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isolang/internal/language"
)

type convertResult struct {
	Input  string `json:"input"`
	Code2  string `json:"code2"`
	Code3  string `json:"code3"` // terminology code, "und" when undetermined
	Name   string `json:"name"`
	French string `json:"french"`
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Normalize language codes and names",
		Long: "Convert any mix of two-letter codes, three-letter codes and English names to " +
			"ISO 639-1, ISO 639-2/T and a display name. Unknown two-letter input passes through " +
			"to ISO 639-1, unknown three-letter input passes through to ISO 639-2/T, and " +
			"anything else becomes \"und\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]convertResult, 0, len(args))
			for _, arg := range args {
				results = append(results, convertResult{
					Input:  arg,
					Code2:  language.ToISO2(arg),
					Code3:  language.ToISO3(arg),
					Name:   language.DisplayName(arg),
					French: language.FrenchName(arg),
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, res := range results {
				rows = append(rows, []string{res.Input, dash(res.Code2), res.Code3, res.Name, dash(res.French)})
			}
			headers := []string{"Input", "ISO 639-1", "ISO 639-2/T", "Name", "French"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}
}
