package zip

import (
	"github.com/arloliu/elfeat/model"
	"github.com/arloliu/elfeat/record"
)

// Record signatures.
const (
	LocalFileSignature       = 0x04034b50
	CentralDirSignature      = 0x02014b50
	EndOfCentralDirSignature = 0x06054b50
	DataDescriptorSignature  = 0x08074b50

	// LocalFileHeaderSize is the fixed part of a local file header.
	LocalFileHeaderSize = 30
)

// Signatures holds the local file header signature.
var Signatures = model.NewTable("signature",
	model.Constant[uint32]{Name: "VALID", Value: LocalFileSignature},
)

// Versions names no constants; any "version needed" value is accepted.
var Versions = model.NewTable[uint16]("version")

// Methods holds compression method identifiers.
var Methods = model.NewTable[uint16]("method", []model.Constant[uint16]{
	{Name: "STORED", Value: 0},
	{Name: "SHRUNK", Value: 1},
	{Name: "REDUCED1", Value: 2},
	{Name: "REDUCED2", Value: 3},
	{Name: "REDUCED3", Value: 4},
	{Name: "REDUCED4", Value: 5},
	{Name: "IMPLODED", Value: 6},
	{Name: "DEFLATED", Value: 8},
	{Name: "DEFLATE64", Value: 9},
	{Name: "BZIP2", Value: 12},
	{Name: "LZMA", Value: 14},
	{Name: "ZSTD", Value: 93},
	{Name: "MP3", Value: 94},
	{Name: "XZ", Value: 95},
	{Name: "JPEG", Value: 96},
	{Name: "WAVPACK", Value: 97},
	{Name: "PPMD", Value: 98},
	{Name: "AES", Value: 99},
}...)

// Flags holds the general purpose bit flags.
var Flags = model.NewTable[uint16]("general_purpose", []model.Constant[uint16]{
	{Name: "ENCRYPTED", Value: 1 << 0},
	{Name: "OPTION1", Value: 1 << 1},
	{Name: "OPTION2", Value: 1 << 2},
	{Name: "DATA_DESCRIPTOR", Value: 1 << 3},
	{Name: "ENHANCED_DEFLATE", Value: 1 << 4},
	{Name: "PATCHED", Value: 1 << 5},
	{Name: "STRONG_ENCRYPTION", Value: 1 << 6},
	{Name: "UTF8", Value: 1 << 11},
	{Name: "MASKED_HEADERS", Value: 1 << 13},
}...)

// LocalFileHeader is the fixed part of a ZIP local file header. The file
// name and extra field follow it.
type LocalFileHeader struct {
	Signature        model.Optional[model.Value[uint32]]
	Version          model.Optional[model.Value[uint16]]
	Flags            model.Optional[model.Flags[uint16]]
	Method           model.Optional[model.Value[uint16]]
	ModTime          model.Optional[uint16]
	ModDate          model.Optional[uint16]
	CRC32            model.Optional[uint32]
	CompressedSize   model.Optional[uint32]
	UncompressedSize model.Optional[uint32]
	NameLength       model.Optional[uint16]
	ExtraLength      model.Optional[uint16]
}

// Local file header fields.
var (
	FieldSignature = record.Bind("signature", model.Enum(Signatures),
		func(h *LocalFileHeader) *model.Optional[model.Value[uint32]] { return &h.Signature })
	FieldVersion = record.Bind("version", model.Enum(Versions),
		func(h *LocalFileHeader) *model.Optional[model.Value[uint16]] { return &h.Version })
	FieldFlags = record.Bind("general_purpose_bf", model.Bits(Flags),
		func(h *LocalFileHeader) *model.Optional[model.Flags[uint16]] { return &h.Flags })
	FieldMethod = record.Bind("compression_method", model.Enum(Methods),
		func(h *LocalFileHeader) *model.Optional[model.Value[uint16]] { return &h.Method })
	FieldModTime = record.Bind("last_modify_time", model.Uint16,
		func(h *LocalFileHeader) *model.Optional[uint16] { return &h.ModTime })
	FieldModDate = record.Bind("last_modify_date", model.Uint16,
		func(h *LocalFileHeader) *model.Optional[uint16] { return &h.ModDate })
	FieldCRC32 = record.Bind("crc32", model.Uint32,
		func(h *LocalFileHeader) *model.Optional[uint32] { return &h.CRC32 })
	FieldCompressedSize = record.Bind("compressed_size", model.Uint32,
		func(h *LocalFileHeader) *model.Optional[uint32] { return &h.CompressedSize })
	FieldUncompressedSize = record.Bind("uncompressed_size", model.Uint32,
		func(h *LocalFileHeader) *model.Optional[uint32] { return &h.UncompressedSize })
	FieldNameLength = record.Bind("file_name_length", model.Uint16,
		func(h *LocalFileHeader) *model.Optional[uint16] { return &h.NameLength })
	FieldExtraLength = record.Bind("extra_field_length", model.Uint16,
		func(h *LocalFileHeader) *model.Optional[uint16] { return &h.ExtraLength })

	// LocalFileHeaderSchema lays out the fixed part of a local file header.
	LocalFileHeaderSchema = record.NewSchema[LocalFileHeader]("local_file_header",
		FieldSignature, FieldVersion, FieldFlags, FieldMethod, FieldModTime, FieldModDate,
		FieldCRC32, FieldCompressedSize, FieldUncompressedSize, FieldNameLength, FieldExtraLength)
)
