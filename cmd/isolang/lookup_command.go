package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"isolang/internal/language"
	"isolang/internal/logging"
)

type lookupResult struct {
	Records []language.Record `json:"records"`
	Unknown []string          `json:"unknown"`
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "lookup CODE...",
		Short: "Show the full record for ISO 639-2 codes",
		Long: "Show the full record for each code. Codes must be exact table keys " +
			"(e.g. ger, fre, chi) unless --lenient is set, which also accepts " +
			"two-letter codes, terminology codes (deu) and English names.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.commandLogger(cmd, "lookup")
			result := lookupResult{Records: []language.Record{}, Unknown: []string{}}
			var hints []string
			for _, arg := range args {
				var (
					r  language.Record
					ok bool
				)
				if lenient {
					r, ok = language.Resolve(arg)
				} else {
					r, ok = language.Lookup(arg)
				}
				if !ok {
					logger.Debug("code not found", logging.Code(arg), logging.Bool("lenient", lenient))
					result.Unknown = append(result.Unknown, arg)
					if alt, found := language.FromAlternate(arg); found {
						hints = append(hints, fmt.Sprintf("%s is the terminology code for %s", arg, alt.Code3))
					}
					continue
				}
				result.Records = append(result.Records, r)
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else if len(result.Records) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderRecords(result.Records))
			}

			if len(result.Unknown) > 0 {
				msg := fmt.Sprintf("unknown language code(s): %s", strings.Join(result.Unknown, ", "))
				if len(hints) > 0 {
					msg += " (" + strings.Join(hints, "; ") + "; use the key or --lenient)"
				}
				return errors.New(msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Accept two-letter codes, terminology codes and English names")
	return cmd
}
