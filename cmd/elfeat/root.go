package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/internal/mmfile"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	stringLimit int
)

var rootCmd = &cobra.Command{
	Use:   "elfeat",
	Short: "Inspect ELF and ZIP headers without copying",
	Long: `elfeat interprets the headers of 64-bit little-endian ELF objects and
ZIP archives directly from a memory map. Fields with undeclared values are
reported rather than rejected.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&stringLimit, "string-limit", buffer.DefaultStringLimit, "Maximum length of a NUL-terminated string")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logger reports unusual fields on stderr. Warnings are shown unless quiet,
// debug records only when verbose.
func logger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openBuffer maps path and wraps it in a Buffer. Closing the returned file
// releases the mapping.
func openBuffer(path string, writable bool) (*buffer.Buffer, *mmfile.File, error) {
	printVerbose("Mapping file: %s\n", path)

	var (
		f   *mmfile.File
		err error
	)
	if writable {
		f, err = mmfile.MapRW(path)
	} else {
		f, err = mmfile.Map(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to map %s: %w", path, err)
	}

	buf, err := buffer.New(f.Data(), buffer.WithStringLimit(stringLimit))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return buf, f, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
