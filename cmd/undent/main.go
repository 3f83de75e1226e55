// Command undent normalizes the indentation of multi-line text.
//
// It applies [go.jacobcolvin.com/undent.Reindent] to the entire contents of
// each named file, or to stdin when no files (or "-") are given, and writes
// the results to stdout in argument order. The normalized text is written
// exactly as produced, with no added trailing newline.
//
// # Usage
//
//	undent [flags] [file ...]
//
// # Flags
//
//	-o, --output FILE   write result to FILE instead of stdout
//	    --log-level     log level (error, warn, info, debug)
//	    --log-format    log format (json, logfmt, text)
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/undent"
	"go.jacobcolvin.com/undent/log"
	"go.jacobcolvin.com/undent/version"
)

var (
	// ErrReadInput indicates an input file or stdin could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates the result could not be written.
	ErrWriteOutput = errors.New("write output")
)

func main() {
	logCfg := log.NewConfig()

	var output string

	rootCmd := &cobra.Command{
		Use:   "undent [flags] [file ...]",
		Short: "Normalize the indentation of multi-line text",
		Long: `undent strips the artifact blank first and last lines of a multi-line
literal and shifts the remaining lines left by their minimum common
indentation. It reads the named files, or stdin when no files (or "-") are
given, and writes the normalized text to stdout.`,
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if usesStdin(args) && term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("%w: stdin is a terminal; pass a file or pipe input", ErrReadInput)
			}

			return run(args, os.Stdin, os.Stdout, output)
		},
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write result to file instead of stdout")
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// usesStdin reports whether the argument list makes the command read stdin.
func usesStdin(args []string) bool {
	return len(args) == 0 || slices.Contains(args, "-")
}

// run normalizes each input and writes the concatenated results to output,
// or to stdout when output is empty or "-".
func run(args []string, stdin io.Reader, stdout io.Writer, output string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var sb strings.Builder

	for _, arg := range args {
		var (
			data []byte
			err  error
		)

		if arg == "-" {
			data, err = io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}
		}

		result := undent.Reindent(string(data))
		slog.Debug("normalized input",
			slog.String("source", arg),
			slog.Int("bytes_in", len(data)),
			slog.Int("bytes_out", len(result)))

		sb.WriteString(result)
	}

	if output == "" || output == "-" {
		_, err := io.WriteString(stdout, sb.String())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(output, []byte(sb.String()), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
