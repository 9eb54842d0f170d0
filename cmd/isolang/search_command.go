package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"isolang/internal/language"
	"isolang/internal/logging"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search languages by code or English/French name",
		Long: "Search codes exactly and names by case- and accent-insensitive substring. " +
			"Code matches are listed first, then names starting with the query, then names containing it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !cmd.Flags().Changed("limit") {
				limit = ctx.configValue().Search.Limit
			}
			matches := language.Search(query, limit)
			ctx.commandLogger(cmd, "search").Debug("search finished",
				logging.String("query", query),
				logging.Int("limit", limit),
				logging.Int("matches", len(matches)),
			)

			if ctx.jsonOutput() {
				if matches == nil {
					matches = []language.Match{}
				}
				return writeJSON(cmd, matches)
			}
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No languages match %q\n", query)
				return nil
			}
			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, append(recordRow(m.Record), m.Field))
			}
			headers := append(append([]string{}, recordHeaders...), "Matched")
			fmt.Fprintln(out, renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0 = unlimited; default from config)")
	return cmd
}
