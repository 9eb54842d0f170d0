package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"isolang/internal/catalog"
	"isolang/internal/config"
	"isolang/internal/language"
	"isolang/internal/logging"
)

type verifyCheck struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var checkCatalog bool
	var dbPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the built-in table and, optionally, the exported catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.commandLogger(cmd, "verify")
			checks := []verifyCheck{tableCheck()}
			if strings.TrimSpace(dbPath) != "" {
				checkCatalog = true
			}
			if checkCatalog {
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
				checks = append(checks, catalogCheck(reqCtx, target, logger))
			}

			failed := 0
			for _, c := range checks {
				if !c.OK && !c.Skipped {
					failed++
					logger.Error("verification failed",
						logging.String("check", c.Name),
						logging.String("detail", c.Detail),
					)
				}
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, checks); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, c := range checks {
					kind := statusOK
					switch {
					case c.Skipped:
						kind = statusWarn
					case !c.OK:
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(c.Name, kind, c.Detail, colorize))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d verification check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkCatalog, "catalog", false, "Also compare the exported catalog with the built-in table")
	cmd.Flags().StringVar(&dbPath, "db", "", "Catalog database to compare (implies --catalog; default from config)")
	return cmd
}

func tableCheck() verifyCheck {
	if err := language.Verify(); err != nil {
		return verifyCheck{Name: "Table", Detail: strings.ReplaceAll(err.Error(), "\n", "; ")}
	}
	return verifyCheck{Name: "Table", OK: true, Detail: fmt.Sprintf("%d entries", language.Len())}
}

func catalogCheck(ctx context.Context, path string, logger *slog.Logger) verifyCheck {
	check := verifyCheck{Name: "Catalog"}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			check.Skipped = true
			check.Detail = "not exported yet (run `isolang export`)"
			return check
		}
		check.Detail = err.Error()
		return check
	}
	return compareCatalog(ctx, path, check, logger)
}

func compareCatalog(ctx context.Context, path string, check verifyCheck, logger *slog.Logger) verifyCheck {
	store, err := catalog.Open(ctx, path, logger)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	defer store.Close()

	count, err := store.Count(ctx)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	if count != language.Len() {
		check.Detail = fmt.Sprintf("catalog has %d rows, table has %d", count, language.Len())
		return check
	}
	var mismatched []string
	for _, code := range language.Codes() {
		want, err := language.Require(code)
		if err != nil {
			check.Detail = err.Error()
			return check
		}
		got, err := store.Lookup(ctx, code)
		if err != nil || got != want {
			logger.Debug("catalog row differs", logging.Code(code), logging.Error(err))
			mismatched = append(mismatched, code)
		}
	}
	if len(mismatched) > 0 {
		check.Detail = fmt.Sprintf("%d stale rows (%s)", len(mismatched), strings.Join(firstN(mismatched, 5), ", "))
		return check
	}
	check.OK = true
	check.Detail = fmt.Sprintf("%d rows match %s", count, path)
	if last, err := store.LastExport(ctx); err == nil {
		check.Detail += fmt.Sprintf(", exported %s", last.ExportedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return check
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
