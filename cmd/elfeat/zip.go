package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/elfeat/zip"
)

var zipVerifyCRC bool

func init() {
	zipCmd := &cobra.Command{
		Use:   "zip",
		Short: "Inspect ZIP archives",
	}

	entriesCmd := newEntriesCmd()
	entriesCmd.Flags().BoolVar(&zipVerifyCRC, "verify", false, "Check the CRC-32 of stored entries")

	zipCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(zipCmd)
}

func newEntriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <archive>",
		Short: "List local file entries",
		Long: `The entries command walks the local file headers from the start of the
archive until the central directory.

Example:
  elfeat zip entries bundle.zip
  elfeat zip entries bundle.zip --verify --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries(args)
		},
	}
}

func runEntries(args []string) error {
	path := args[0]

	buf, f, err := openBuffer(path, false)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zip.NewWalker(buf, zip.WithLogger(logger()), zip.WithVerifyCRC(zipVerifyCRC))
	if err != nil {
		return err
	}

	entries, err := w.Entries()
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", path, err)
	}

	if jsonOut {
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			out = append(out, map[string]any{
				"name":   e.Name,
				"offset": e.Offset,
				"data":   e.DataOffset,
				"size":   len(e.Data),
				"method": e.Method().String(),
				"flags":  optString(e.Header.Flags),
				"valid":  e.Valid,
			})
		}

		return printJSON(out)
	}

	printInfo("%-10s %-10s %-14s %s\n", "Offset", "Size", "Method", "Name")
	for _, e := range entries {
		printInfo("%#-10x %-10d %-14s %s\n", e.Offset, len(e.Data), e.Method(), e.Name)
	}
	printVerbose("%d entries\n", len(entries))

	return nil
}
