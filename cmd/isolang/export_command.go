package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"isolang/internal/catalog"
	"isolang/internal/config"
	"isolang/internal/language"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the language table to the SQLite catalog",
		Long: "Replace the contents of the SQLite catalog with the built-in table. " +
			"Concurrent exports are serialized with a lock file next to the database; " +
			"the wait is bounded by catalog.lock_timeout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			target := cfg.Catalog.Path
			if strings.TrimSpace(dbPath) != "" {
				expanded, err := config.ExpandPath(dbPath)
				if err != nil {
					return fmt.Errorf("resolve catalog path: %w", err)
				}
				target = expanded
			}

			reqCtx, cancel := context.WithTimeout(ctx.requestContext(cmd), cfg.LockTimeout())
			defer cancel()

			logger := ctx.commandLogger(cmd, "export")
			store, err := catalog.Open(reqCtx, target, logger)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			result, err := store.Export(reqCtx, language.All())
			if err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Catalog", statusOK, result.Path, colorize))
			fmt.Fprintln(out, renderStatusLine("Rows", statusInfo, fmt.Sprintf("%d", result.Rows), colorize))
			fmt.Fprintln(out, renderStatusLine("Export ID", statusInfo, result.ID, colorize))
			fmt.Fprintln(out, renderStatusLine("Elapsed", statusInfo, result.Elapsed.Round(time.Millisecond).String(), colorize))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Catalog database path (default from config)")
	return cmd
}
