package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eigerco/vlq/pkg/log"
)

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Print every value encoded in a hex string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(strings.Fields(strings.Join(args, " ")), "")
			data, err := hex.DecodeString(input)
			if err != nil {
				return fmt.Errorf("parsing hex input: %w", err)
			}
			s := opts.serializer()
			out := cmd.OutOrStdout()

			if opts.signed {
				values, err := s.DecodeAllInt(data)
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Fprintln(out, v)
				}
				log.CLI.Debug().Int("count", len(values)).Msg("decoded")
				return nil
			}

			values, err := s.DecodeAll(data)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
			log.CLI.Debug().Int("count", len(values)).Msg("decoded")
			return nil
		},
	}
}
