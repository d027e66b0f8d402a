package app

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/jsundh/regidi/internal/maintenance"
	"github.com/jsundh/regidi/internal/substitution"
	"github.com/jsundh/regidi/pkg/set"
	"github.com/spf13/cobra"
)

const (
	tableBasic     = "basic"
	tableAuxiliary = "aux"
)

func (a *app) space(table string) (*keyspace.Space, error) {
	switch table {
	case tableBasic:
		return keyspace.Basic(), nil
	case tableAuxiliary:
		return keyspace.Auxiliary(a.cfg.Table.FirstOnly)
	default:
		return nil, fmt.Errorf("unknown table %q, want %s or %s", table, tableBasic, tableAuxiliary)
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list basic|aux",
		Short:     "Print every key and digest of a table, without substitutions",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{tableBasic, tableAuxiliary},
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := a.space(args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for key, digest := range space.All() {
				if _, err := fmt.Fprintf(w, "%d,%s\n", key, digest); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

func (a *app) scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "scan basic|aux",
		Short:     "Find bad words in all possible digests of a table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{tableBasic, tableAuxiliary},
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := a.space(args[0])
			if err != nil {
				return err
			}

			words, err := a.cfg.Words()
			if err != nil {
				return err
			}

			report, err := maintenance.Scan(cmd.Context(), space, words, a.cfg.Maintenance.Workers)
			if err != nil {
				return err
			}

			matched := set.Sorted(report.Matched)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bad words matched (%d): %s\n", len(matched), strings.Join(matched, ", "))
			fmt.Fprintf(out, "Digests that would be excluded: %d/%d (%.2f%%)\n",
				report.Excluded, report.Total, report.Ratio()*100)

			return nil
		},
	}
}

func (a *app) updateSubstitutionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "update-substitutions",
		Short: "Rebuild the substitution table from the bad word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Substitutions.Path
			}
			if output == "" {
				return fmt.Errorf("no output file: pass --output or set substitutions.path")
			}

			words, err := a.cfg.Words()
			if err != nil {
				return err
			}

			pairs, err := maintenance.BuildSubstitutions(cmd.Context(), words, a.cfg.Table.FirstOnly)
			if err != nil {
				return err
			}

			// refuse to write a table the codec would not load
			if _, err := substitution.New(pairs); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := substitution.Write(f, pairs); err != nil {
				return err
			}

			slog.Info("substitutions written",
				slog.String("path", output),
				slog.Int("count", len(pairs)),
			)

			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default substitutions.path)")

	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that no digest contains a bad word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.cfg.Words()
			if err != nil {
				return err
			}

			violations := maintenance.Validate(a.cfg.Codec(), words)
			for _, v := range violations {
				fmt.Fprintf(cmd.OutOrStdout(), "Bad word %q found in %s, key=%d\n", v.Word, v.Digest, v.Key)
			}

			if len(violations) > 0 {
				return fmt.Errorf("%d digests contain bad words, run update-substitutions", len(violations))
			}

			return nil
		},
	}
}
