package elf

import (
	"fmt"
	"strings"

	"github.com/arloliu/elfeat/model"
	"github.com/arloliu/elfeat/record"
)

// Magics holds the EI_MAG word.
var Magics = model.NewTable("EI_MAG",
	model.Constant[uint32]{Name: "ELFMAG", Value: Magic},
)

// Ident is the e_ident block at the start of every ELF file.
type Ident struct {
	Magic      model.Optional[model.Value[uint32]]
	Class      model.Optional[model.Value[uint8]]
	Data       model.Optional[model.Value[uint8]]
	Version    model.Optional[model.Value[uint8]]
	OSABI      model.Optional[model.Value[uint8]]
	ABIVersion model.Optional[uint8]
	Pad        model.Optional[[]uint8]
}

var (
	identMagic = record.Bind("ei_mag", model.Enum(Magics),
		func(i *Ident) *model.Optional[model.Value[uint32]] { return &i.Magic })
	identClass = record.Bind("ei_class", model.Enum(Classes),
		func(i *Ident) *model.Optional[model.Value[uint8]] { return &i.Class })
	identData = record.Bind("ei_data", model.Enum(DataEncodings),
		func(i *Ident) *model.Optional[model.Value[uint8]] { return &i.Data })
	identVersion = record.Bind("ei_version", model.Enum(IdentVersions),
		func(i *Ident) *model.Optional[model.Value[uint8]] { return &i.Version })
	identOSABI = record.Bind("ei_osabi", model.Enum(OSABIs),
		func(i *Ident) *model.Optional[model.Value[uint8]] { return &i.OSABI })
	identABIVersion = record.Bind("ei_abiversion", model.Uint8,
		func(i *Ident) *model.Optional[uint8] { return &i.ABIVersion })
	identPad = record.Bind("ei_pad", model.Array[uint8](model.Uint8, 7),
		func(i *Ident) *model.Optional[[]uint8] { return &i.Pad })

	// IdentSchema lays out e_ident.
	IdentSchema = record.NewSchema[Ident]("e_ident",
		identMagic, identClass, identData, identVersion, identOSABI, identABIVersion, identPad)
)

// Header is the ELF64 file header.
type Header struct {
	Ident     model.Optional[Ident]
	Type      model.Optional[model.Value[uint16]]
	Machine   model.Optional[model.Value[uint16]]
	Version   model.Optional[model.Value[uint32]]
	Entry     model.Optional[uint64]
	PhOff     model.Optional[uint64]
	ShOff     model.Optional[uint64]
	Flags     model.Optional[model.Value[uint32]]
	EhSize    model.Optional[uint16]
	PhEntSize model.Optional[uint16]
	PhNum     model.Optional[model.Value[uint16]]
	ShEntSize model.Optional[uint16]
	ShNum     model.Optional[uint16]
	ShStrNdx  model.Optional[model.Value[uint16]]
}

// Header fields.
var (
	EIdent = record.Bind("e_ident", model.Type[Ident](IdentSchema),
		func(h *Header) *model.Optional[Ident] { return &h.Ident })
	EType = record.Bind("e_type", model.Enum(Types),
		func(h *Header) *model.Optional[model.Value[uint16]] { return &h.Type })
	EMachine = record.Bind("e_machine", model.Enum(Machines),
		func(h *Header) *model.Optional[model.Value[uint16]] { return &h.Machine })
	EVersion = record.Bind("e_version", model.Enum(Versions),
		func(h *Header) *model.Optional[model.Value[uint32]] { return &h.Version })
	EEntry = record.Bind("e_entry", model.Uint64,
		func(h *Header) *model.Optional[uint64] { return &h.Entry })
	EPhOff = record.Bind("e_phoff", model.Uint64,
		func(h *Header) *model.Optional[uint64] { return &h.PhOff })
	EShOff = record.Bind("e_shoff", model.Uint64,
		func(h *Header) *model.Optional[uint64] { return &h.ShOff })
	EFlags = record.Bind("e_flags", model.Enum(ProcessorFlags),
		func(h *Header) *model.Optional[model.Value[uint32]] { return &h.Flags })
	EEhSize = record.Bind("e_ehsize", model.Uint16,
		func(h *Header) *model.Optional[uint16] { return &h.EhSize })
	EPhEntSize = record.Bind("e_phentsize", model.Uint16,
		func(h *Header) *model.Optional[uint16] { return &h.PhEntSize })
	EPhNum = record.Bind("e_phnum", model.Enum(ProgramHeaderCounts),
		func(h *Header) *model.Optional[model.Value[uint16]] { return &h.PhNum })
	EShEntSize = record.Bind("e_shentsize", model.Uint16,
		func(h *Header) *model.Optional[uint16] { return &h.ShEntSize })
	EShNum = record.Bind("e_shnum", model.Uint16,
		func(h *Header) *model.Optional[uint16] { return &h.ShNum })
	EShStrNdx = record.Bind("e_shstrndx", model.Enum(SectionIndices),
		func(h *Header) *model.Optional[model.Value[uint16]] { return &h.ShStrNdx })

	// HeaderSchema lays out Elf64_Ehdr.
	HeaderSchema = record.NewSchema[Header]("Elf64_Ehdr",
		EIdent, EType, EMachine, EVersion, EEntry, EPhOff, EShOff, EFlags,
		EEhSize, EPhEntSize, EPhNum, EShEntSize, EShNum, EShStrNdx)
)

// SectionHeader is an ELF64 section header.
type SectionHeader struct {
	Name      model.Optional[uint32]
	Type      model.Optional[model.Value[uint32]]
	Flags     model.Optional[model.Flags[uint64]]
	Addr      model.Optional[uint64]
	Offset    model.Optional[uint64]
	Size      model.Optional[uint64]
	Link      model.Optional[uint32]
	Info      model.Optional[uint32]
	AddrAlign model.Optional[uint64]
	EntSize   model.Optional[uint64]
}

// Section header fields.
var (
	ShName = record.Bind("sh_name", model.Uint32,
		func(s *SectionHeader) *model.Optional[uint32] { return &s.Name })
	ShType = record.Bind("sh_type", model.Enum(SectionTypes),
		func(s *SectionHeader) *model.Optional[model.Value[uint32]] { return &s.Type })
	ShFlags = record.Bind("sh_flags", model.Bits(SectionFlags),
		func(s *SectionHeader) *model.Optional[model.Flags[uint64]] { return &s.Flags })
	ShAddr = record.Bind("sh_addr", model.Uint64,
		func(s *SectionHeader) *model.Optional[uint64] { return &s.Addr })
	ShOffset = record.Bind("sh_offset", model.Uint64,
		func(s *SectionHeader) *model.Optional[uint64] { return &s.Offset })
	ShSize = record.Bind("sh_size", model.Uint64,
		func(s *SectionHeader) *model.Optional[uint64] { return &s.Size })
	ShLink = record.Bind("sh_link", model.Uint32,
		func(s *SectionHeader) *model.Optional[uint32] { return &s.Link })
	ShInfo = record.Bind("sh_info", model.Uint32,
		func(s *SectionHeader) *model.Optional[uint32] { return &s.Info })
	ShAddrAlign = record.Bind("sh_addralign", model.Uint64,
		func(s *SectionHeader) *model.Optional[uint64] { return &s.AddrAlign })
	ShEntSize = record.Bind("sh_entsize", model.Uint64,
		func(s *SectionHeader) *model.Optional[uint64] { return &s.EntSize })

	// SectionHeaderSchema lays out Elf64_Shdr.
	SectionHeaderSchema = record.NewSchema[SectionHeader]("Elf64_Shdr",
		ShName, ShType, ShFlags, ShAddr, ShOffset, ShSize, ShLink, ShInfo, ShAddrAlign, ShEntSize)
)

// Identified reports whether the header starts with the ELF magic for a
// 64-bit little-endian object.
func (h Header) Identified() bool {
	id, ok := h.Ident.Get()
	if !ok {
		return false
	}

	return identMagic.Sane(&id) && identClass.Sane(&id) && identData.Sane(&id)
}

// String renders the header one field per line.
func (h Header) String() string {
	var sb strings.Builder
	sb.WriteString("Elf64_Ehdr {\n")
	if id, ok := h.Ident.Get(); ok {
		fmt.Fprintf(&sb, "  e_ident: %s\n", id)
	}
	writeField(&sb, "e_type", h.Type)
	writeField(&sb, "e_machine", h.Machine)
	writeField(&sb, "e_version", h.Version)
	writeHex(&sb, "e_entry", h.Entry)
	writeField(&sb, "e_phoff", h.PhOff)
	writeField(&sb, "e_shoff", h.ShOff)
	writeField(&sb, "e_flags", h.Flags)
	writeField(&sb, "e_ehsize", h.EhSize)
	writeField(&sb, "e_phentsize", h.PhEntSize)
	writeField(&sb, "e_phnum", h.PhNum)
	writeField(&sb, "e_shentsize", h.ShEntSize)
	writeField(&sb, "e_shnum", h.ShNum)
	writeField(&sb, "e_shstrndx", h.ShStrNdx)
	sb.WriteString("}")

	return sb.String()
}

// String renders the identification bytes, printable ones as characters.
func (id Ident) String() string {
	b := IdentSchema.Append(make([]byte, 0, IdentSize), id)

	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			fmt.Fprintf(&sb, "%2c", c)
		} else {
			fmt.Fprintf(&sb, "0x%02x", c)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// String renders the section header one field per line.
func (s SectionHeader) String() string {
	var sb strings.Builder
	sb.WriteString("Elf64_Shdr {\n")
	writeField(&sb, "sh_name", s.Name)
	writeField(&sb, "sh_type", s.Type)
	writeField(&sb, "sh_flags", s.Flags)
	writeHex(&sb, "sh_addr", s.Addr)
	writeHex(&sb, "sh_offset", s.Offset)
	writeField(&sb, "sh_size", s.Size)
	writeField(&sb, "sh_link", s.Link)
	writeField(&sb, "sh_info", s.Info)
	writeField(&sb, "sh_addralign", s.AddrAlign)
	writeField(&sb, "sh_entsize", s.EntSize)
	sb.WriteString("}")

	return sb.String()
}

func writeField[T any](sb *strings.Builder, name string, o model.Optional[T]) {
	if v, ok := o.Get(); ok {
		fmt.Fprintf(sb, "  %s: %v\n", name, v)
	} else {
		fmt.Fprintf(sb, "  %s: <absent>\n", name)
	}
}

func writeHex(sb *strings.Builder, name string, o model.Optional[uint64]) {
	if v, ok := o.Get(); ok {
		fmt.Fprintf(sb, "  %s: %#x\n", name, v)
	} else {
		fmt.Fprintf(sb, "  %s: <absent>\n", name)
	}
}
