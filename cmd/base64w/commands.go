package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/josephcopenhaver/base64w"
	"github.com/josephcopenhaver/base64w/internal/serializer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	verbose   bool
	raw       bool
	snappy    bool
	gzip      bool
	noNewline bool
}

func newRootCmd() *cobra.Command {
	var opts options

	logger := logrus.New()

	rootCmd := &cobra.Command{
		Use:           "base64w",
		Short:         "Web-safe base64 encoder and decoder",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

			logger.SetLevel(logrus.InfoLevel)
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newEncodeCmd(&opts, logger),
		newDecodeCmd(&opts, logger),
		newLenCmd(),
	)

	return rootCmd
}

func addCodecFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.raw, "raw", "r", false, "Omit pad markers")
	cmd.Flags().BoolVar(&opts.snappy, "snappy", false, "Apply snappy compression under the encoding")
	cmd.Flags().BoolVar(&opts.gzip, "gzip", false, "Apply gzip compression under the encoding")
	cmd.MarkFlagsMutuallyExclusive("snappy", "gzip")
}

// stages returns the serializer names in the order they apply when
// encoding.
func (o *options) stages() []string {
	var names []string

	switch {
	case o.snappy:
		names = append(names, "snappy")
	case o.gzip:
		names = append(names, "gzip")
	}

	if o.raw {
		return append(names, "base64w-raw")
	}

	return append(names, "base64w")
}

func newEncodeCmd(opts *options, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := opts.stages()

			chain, err := serializer.Lookup(names...)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := chain.Serialize(data)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"stages": names,
				"in":     len(data),
				"out":    len(out),
			}).Debug("encoded")

			if !opts.noNewline {
				out = append(out, '\n')
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	addCodecFlags(cmd, opts)
	cmd.Flags().BoolVarP(&opts.noNewline, "no-newline", "n", false, "Do not write a trailing newline")

	return cmd
}

func newDecodeCmd(opts *options, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a file or stdin",
		Long: "Decode a file or stdin.\n\n" +
			"One trailing line terminator is ignored. Any other byte outside the\n" +
			"web-safe alphabet fails the whole decode.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := opts.stages()

			chain, err := serializer.Lookup(names...)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			data = trimLineTerminator(data)

			out, err := chain.Deserialize(data)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"stages": names,
				"in":     len(data),
				"out":    len(out),
			}).Debug("decoded")

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	addCodecFlags(cmd, opts)

	return cmd
}

func newLenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len <n>",
		Short: "Print buffer sizes for an input of n bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[0], err)
			}
			if n < 0 {
				return fmt.Errorf("invalid length %q: must not be negative", args[0])
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "encoded-len\t%d\n", base64w.EncodedLength(n))
			fmt.Fprintf(w, "encoded-raw-len\t%d\n", base64w.RawEncodedLength(n))
			fmt.Fprintf(w, "encode-capacity\t%d\n", base64w.EncodeCapacity(n))
			fmt.Fprintf(w, "decoded-len\t%d\n", base64w.DecodedLength(n))
			fmt.Fprintf(w, "decode-capacity\t%d\n", base64w.DecodeCapacity(n))

			return nil
		},
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return b, nil
}

func trimLineTerminator(b []byte) []byte {
	if b, ok := bytes.CutSuffix(b, []byte("\r\n")); ok {
		return b
	}

	b, _ = bytes.CutSuffix(b, []byte("\n"))

	return b
}
