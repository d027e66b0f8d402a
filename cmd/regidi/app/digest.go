package app

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/jsundh/regidi/internal/format"
	"github.com/spf13/cobra"
)

func (a *app) digestCmd() *cobra.Command {
	var (
		inputFormat string
		length      int
	)

	cmd := &cobra.Command{
		Use:   "digest [inputs...]",
		Short: "Print digests for the given inputs, or for each line of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(format.InputFormats, inputFormat) {
				return fmt.Errorf("%w: %q", format.ErrUnknownFormat, inputFormat)
			}

			codec := a.cfg.Codec()

			var digest func(uint64) string
			switch length {
			case 18:
				digest = codec.Digest18
			case 24:
				digest = codec.Digest24
			default:
				return fmt.Errorf("length must be 18 or 24, got %d", length)
			}

			if len(args) > 0 {
				return digestAll(cmd.OutOrStdout(), slices.Values(args), inputFormat, digest)
			}
			return digestLines(cmd.InOrStdin(), cmd.OutOrStdout(), inputFormat, digest)
		},
	}

	cmd.Flags().StringVarP(&inputFormat, "format", "f", format.Hex,
		"input format ("+strings.Join(format.InputFormats, "|")+")")
	cmd.Flags().IntVarP(&length, "length", "l", 18, "digest length in bits (18|24)")

	return cmd
}

func digestLines(r io.Reader, w io.Writer, inputFormat string, digest func(uint64) string) error {
	sc := bufio.NewScanner(r)
	var lines iter.Seq[string] = func(yield func(string) bool) {
		for sc.Scan() {
			line := sc.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}

	if err := digestAll(w, lines, inputFormat, digest); err != nil {
		return err
	}
	return sc.Err()
}

func digestAll(w io.Writer, inputs iter.Seq[string], inputFormat string, digest func(uint64) string) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for input := range inputs {
		key, err := format.ParseKey(input, inputFormat)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, digest(key)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
