package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isolang/internal/language"
	"isolang/internal/logging"
)

type iso2Result struct {
	Code3    string `json:"code3"`
	Code2    string `json:"code2"`
	Fallback bool   `json:"fallback,omitempty"`
}

func newISO2Command(ctx *commandContext) *cobra.Command {
	var useFallback bool

	cmd := &cobra.Command{
		Use:   "iso2 CODE...",
		Short: "Print the ISO 639-1 code for ISO 639-3 codes",
		Long: "Print the two-letter code for each three-letter code, one per line. " +
			"Unknown codes and codes without a two-letter form print an empty line; " +
			"the command never fails on unrecognized input.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.commandLogger(cmd, "iso2")

			results := make([]iso2Result, 0, len(args))
			for _, arg := range args {
				res := iso2Result{Code3: arg, Code2: language.TwoLetterCodeFrom(arg)}
				if res.Code2 == "" && useFallback && cfg.Language.Fallback != "" {
					logging.WarnWithContext(logger, "no two-letter code, using fallback", "iso2_fallback",
						logging.Code(arg),
						logging.String("fallback", cfg.Language.Fallback),
						logging.String(logging.FieldImpact, "fallback language printed instead of an empty line"),
						logging.String(logging.FieldErrorHint, "check the code with `isolang lookup --lenient`"),
					)
					res.Code2 = cfg.Language.Fallback
					res.Fallback = true
				}
				results = append(results, res)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintln(out, res.Code2)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useFallback, "fallback", false, "Print the configured fallback language instead of empty results")
	return cmd
}
