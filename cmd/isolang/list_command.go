package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isolang/internal/language"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var withISO1 bool
	var preferredFirst bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every language in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := language.All()
			if withISO1 {
				filtered := records[:0]
				for _, r := range records {
					if r.Code2 != "" {
						filtered = append(filtered, r)
					}
				}
				records = filtered
			}
			if preferredFirst {
				records = preferredOrder(records, ctx.configValue().Language.Preferred)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, records)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRecords(records))
			fmt.Fprintf(out, "%d languages\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withISO1, "with-iso1", false, "Only list languages that have an ISO 639-1 code")
	cmd.Flags().BoolVar(&preferredFirst, "preferred", false, "List the configured preferred languages first")
	return cmd
}

// preferredOrder moves records matching preferred codes to the front, in
// preferred order, keeping the remaining records in their original order.
func preferredOrder(records []language.Record, preferred []string) []language.Record {
	if len(preferred) == 0 {
		return records
	}
	rank := make(map[string]int, len(preferred))
	for i, code := range preferred {
		if r, ok := language.Resolve(code); ok {
			if _, seen := rank[r.Code3]; !seen {
				rank[r.Code3] = i
			}
		}
	}
	front := make([]language.Record, len(preferred))
	present := make([]bool, len(preferred))
	rest := make([]language.Record, 0, len(records))
	for _, r := range records {
		if i, ok := rank[r.Code3]; ok {
			front[i] = r
			present[i] = true
			continue
		}
		rest = append(rest, r)
	}
	out := make([]language.Record, 0, len(records))
	for i, r := range front {
		if present[i] {
			out = append(out, r)
		}
	}
	return append(out, rest...)
}
