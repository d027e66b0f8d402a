package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsundh/regidi/internal/format"
	"github.com/jsundh/regidi/pkg/regidi"
	"github.com/spf13/cobra"
)

func (a *app) reverseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "reverse <digest>",
		Short: "Find the input that generates the given digest, if there is one",
		Long: "Find the input that generates the given digest, if there is one.\n\n" +
			"Digests ending in two digits are read as 24-bit digests. Not every\n" +
			"well-formed digest has an input: substitute digests are only used as\n" +
			"far as there are keys to replace.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(format.OutputFormats, outputFormat) {
				return fmt.Errorf("%w: %q", format.ErrUnknownFormat, outputFormat)
			}

			codec := a.cfg.Codec()

			key, bits, err := format.Reverse(codec, args[0])
			if errors.Is(err, regidi.ErrNoInput) {
				return fmt.Errorf("no input found for the given digest")
			}
			if err != nil {
				return err
			}

			// the key must render back to what was typed
			again := codec.Digest18(key)
			if bits == 24 {
				again = codec.Digest24(key)
			}
			if again != format.Normalize(args[0]) {
				return fmt.Errorf("digest %q decoded to %d which renders as %q", args[0], key, again)
			}

			out, err := format.FormatKey(key, outputFormat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", format.Hex,
		"output format ("+strings.Join(format.OutputFormats, "|")+")")

	return cmd
}
