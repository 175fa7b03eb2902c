package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eigerco/vlq/pkg/log"
)

func newEncodeCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "encode <number>",
		Short: "Print the encoding of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.serializer()

			var (
				encoded []byte
				err     error
			)
			if opts.signed {
				n, perr := strconv.ParseInt(args[0], 0, 64)
				if perr != nil {
					return fmt.Errorf("parsing %q: %w", args[0], perr)
				}
				encoded, err = s.EncodeInt(n)
			} else {
				n, perr := strconv.ParseUint(args[0], 0, 64)
				if perr != nil {
					return fmt.Errorf("parsing %q: %w", args[0], perr)
				}
				encoded, err = s.EncodeUint(n)
			}
			if err != nil {
				return err
			}
			log.CLI.Debug().Str("input", args[0]).Int("length", len(encoded)).Msg("encoded")

			out, err := formatBytes(encoded, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format (hex, bin)")
	return cmd
}

func formatBytes(b []byte, format string) (string, error) {
	var verb string
	switch format {
	case "hex":
		verb = "%02x"
	case "bin":
		verb = "%08b"
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}

	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf(verb, c)
	}
	return strings.Join(parts, " "), nil
}
