package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/elfeat/elf"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/model"
)

var (
	peekOffset uint64
	setTypeOut bool
)

func init() {
	elfCmd := &cobra.Command{
		Use:   "elf",
		Short: "Inspect 64-bit little-endian ELF objects",
	}

	peekCmd := newPeekCmd()
	peekCmd.Flags().Uint64Var(&peekOffset, "offset", 0, "Byte offset inside the section")

	setTypeCmd := newSetTypeCmd()
	setTypeCmd.Flags().BoolVar(&setTypeOut, "show", false, "Print the whole header after the change")

	elfCmd.AddCommand(newHeaderCmd(), newSectionsCmd(), peekCmd, setTypeCmd)
	rootCmd.AddCommand(elfCmd)
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the ELF file header",
		Long: `The header command interprets the Elf64_Ehdr at the start of the file.
Fields holding undeclared values are printed as Unknown(n).

Example:
  elfeat elf header /bin/ls
  elfeat elf header /bin/ls --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args)
		},
	}
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "List section headers with their names",
		Long: `The sections command walks the section header table and resolves each
name through the section name string table.

Example:
  elfeat elf sections /bin/ls`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
}

func newPeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peek <file> <section>",
		Short: "Read two consecutive 32-bit words from a section",
		Long: `The peek command reads two little-endian 32-bit words at the start of a
section, or at --offset inside it, and prints them as one 64-bit value with
the first word in the high half.

Example:
  elfeat elf peek /bin/ls .text
  elfeat elf peek /bin/ls .text --offset 16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeek(args)
		},
	}
}

func newSetTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-type <file> <type>",
		Short: "Rewrite e_type in place",
		Long: `The set-type command rewrites the e_type field of the file header through
a shared writable mapping. The type is an ET_ name or a number.

Example:
  elfeat elf set-type ./a.out ET_DYN
  elfeat elf set-type ./a.out 0xfe00 --show`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetType(args)
		},
	}
}

func loadELF(path string) (*elf.Reader, *elf.File, func() error, error) {
	buf, f, err := openBuffer(path, false)
	if err != nil {
		return nil, nil, nil, err
	}

	r, err := elf.NewReader(buf, elf.WithLogger(logger()))
	if err != nil {
		_ = f.Close()
		return nil, nil, nil, err
	}

	file, err := r.Load()
	if err != nil {
		_ = f.Close()
		return nil, nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return r, file, f.Close, nil
}

func runHeader(args []string) error {
	path := args[0]

	buf, f, err := openBuffer(path, false)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := elf.NewReader(buf, elf.WithLogger(logger()))
	if err != nil {
		return err
	}

	h, err := r.Header()
	if err != nil && errs.StatusOf(err) != format.StatusInvalid {
		return fmt.Errorf("failed to read header: %w", err)
	}

	if jsonOut {
		return printJSON(headerInfo(h, err == nil))
	}

	printInfo("%s\n", h)
	if err != nil {
		printInfo("\n%v\n", err)
	}

	return nil
}

func runSections(args []string) error {
	_, file, closeFn, err := loadELF(args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	if jsonOut {
		out := make([]map[string]any, 0, len(file.Sections))
		for _, s := range file.Sections {
			out = append(out, sectionInfo(s))
		}

		return printJSON(out)
	}

	printInfo("%-5s %-24s %-20s %-18s %-10s %s\n", "Idx", "Name", "Type", "Offset", "Size", "Flags")
	for _, s := range file.Sections {
		sh := s.Header
		printInfo("%-5d %-24s %-20s %#-18x %#-10x %s\n",
			s.Index, s.Name, optString(sh.Type), sh.Offset.OrElse(0), sh.Size.OrElse(0), optString(sh.Flags))
	}

	return nil
}

func runPeek(args []string) error {
	r, file, closeFn, err := loadELF(args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	sec, err := file.Section(args[1])
	if err != nil {
		return err
	}

	size := sec.Header.Size.OrElse(0)
	if peekOffset > size || size-peekOffset < 8 {
		return fmt.Errorf("section %s holds %d bytes, need 8 at offset %d: %w",
			sec.Name, size, peekOffset, errs.ErrInsufficientLength)
	}

	off := sec.Header.Offset.OrElse(0) + peekOffset
	v, err := r.Uint32Pair(off)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"section": sec.Name,
			"offset":  off,
			"value":   fmt.Sprintf("%#016x", v),
		})
	}

	printInfo("%s+%#x (file offset %#x): %#016x\n", sec.Name, peekOffset, off, v)

	return nil
}

func runSetType(args []string) error {
	path := args[0]

	typ, err := elf.ParseType(args[1])
	if err != nil {
		return err
	}

	buf, f, err := openBuffer(path, true)
	if err != nil {
		return err
	}
	defer f.Close()

	prev, h, err := elf.Retype(buf, typ)
	if err != nil {
		return fmt.Errorf("failed to set type: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":     path,
			"previous": prev.String(),
			"type":     typ.String(),
			"success":  true,
		})
	}

	printInfo("e_type: %s -> %s\n", prev, typ)
	if setTypeOut {
		printInfo("%s\n", h)
	}

	return nil
}

func optString[T any](o model.Optional[T]) string {
	v, ok := o.Get()
	if !ok {
		return "-"
	}

	return fmt.Sprint(v)
}

func headerInfo(h elf.Header, valid bool) map[string]any {
	return map[string]any{
		"type":       optString(h.Type),
		"machine":    optString(h.Machine),
		"version":    optString(h.Version),
		"entry":      fmt.Sprintf("%#x", h.Entry.OrElse(0)),
		"phoff":      h.PhOff.OrElse(0),
		"shoff":      h.ShOff.OrElse(0),
		"flags":      optString(h.Flags),
		"ehsize":     h.EhSize.OrElse(0),
		"phentsize":  h.PhEntSize.OrElse(0),
		"phnum":      optString(h.PhNum),
		"shentsize":  h.ShEntSize.OrElse(0),
		"shnum":      h.ShNum.OrElse(0),
		"shstrndx":   optString(h.ShStrNdx),
		"identified": h.Identified(),
		"valid":      valid,
	}
}

func sectionInfo(s elf.Section) map[string]any {
	sh := s.Header
	return map[string]any{
		"index":     s.Index,
		"name":      s.Name,
		"type":      optString(sh.Type),
		"flags":     optString(sh.Flags),
		"addr":      fmt.Sprintf("%#x", sh.Addr.OrElse(0)),
		"offset":    sh.Offset.OrElse(0),
		"size":      sh.Size.OrElse(0),
		"link":      sh.Link.OrElse(0),
		"info":      sh.Info.OrElse(0),
		"addralign": sh.AddrAlign.OrElse(0),
		"entsize":   sh.EntSize.OrElse(0),
	}
}
