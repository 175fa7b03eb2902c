package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eigerco/vlq/pkg/log"
	"github.com/eigerco/vlq/pkg/serialization"
	"github.com/eigerco/vlq/pkg/serialization/codec"
)

type options struct {
	logLevel  string
	logFormat string
	fast      bool
	signed    bool
}

func (o *options) serializer() *serialization.Serializer {
	if o.fast {
		return serialization.NewSerializer(codec.NewFastCodec())
	}
	return serialization.NewSerializer(codec.NewVLQCodec())
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "vlq",
		Short:         "Encode and decode variable-length quantities",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			typ, err := log.ParseLoggerType(opts.logFormat)
			if err != nil {
				return err
			}
			log.Init(log.Options{LogLevel: level, Type: typ, Out: cmd.ErrOrStderr()})
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")
	flags.BoolVar(&opts.fast, "fast", false, "Use the prefix-length encoding instead of continuation bits")
	flags.BoolVarP(&opts.signed, "signed", "s", false, "Treat values as signed 64-bit integers")

	rootCmd.AddCommand(newEncodeCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
