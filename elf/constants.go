package elf

import "github.com/arloliu/elfeat/model"

// Identification bytes.
const (
	Magic = 0x464c457f // "\x7fELF" read as a little-endian word

	IdentSize   = 16
	HeaderSize  = 64
	SectionSize = 64
)

// Classes holds EI_CLASS values. Only 64-bit objects are modeled.
var Classes = model.NewTable("EI_CLASS",
	model.Constant[uint8]{Name: "ELFCLASS64", Value: 2},
)

// DataEncodings holds EI_DATA values. Only little-endian objects are modeled.
var DataEncodings = model.NewTable("EI_DATA",
	model.Constant[uint8]{Name: "ELFDATA2LSB", Value: 1},
)

// IdentVersions holds EI_VERSION values.
var IdentVersions = model.NewTable("EI_VERSION",
	model.Constant[uint8]{Name: "EV_CURRENT", Value: 1},
)

// OSABIs holds EI_OSABI values.
var OSABIs = model.NewTable[uint8]("EI_OSABI", []model.Constant[uint8]{
	{Name: "ELFOSABI_SYSV", Value: 0},
	{Name: "ELFOSABI_HPUX", Value: 1},
	{Name: "ELFOSABI_NETBSD", Value: 2},
	{Name: "ELFOSABI_GNU", Value: 3},
	{Name: "ELFOSABI_SOLARIS", Value: 6},
	{Name: "ELFOSABI_AIX", Value: 7},
	{Name: "ELFOSABI_IRIX", Value: 8},
	{Name: "ELFOSABI_FREEBSD", Value: 9},
	{Name: "ELFOSABI_TRU64", Value: 10},
	{Name: "ELFOSABI_MODESTO", Value: 11},
	{Name: "ELFOSABI_OPENBSD", Value: 12},
	{Name: "ELFOSABI_ARM_AEABI", Value: 64},
	{Name: "ELFOSABI_ARM", Value: 97},
	{Name: "ELFOSABI_STANDALONE", Value: 255},
}...)

// Types holds e_type values.
var Types = model.NewTable[uint16]("e_type", []model.Constant[uint16]{
	{Name: "ET_NONE", Value: 0},
	{Name: "ET_REL", Value: 1},
	{Name: "ET_EXEC", Value: 2},
	{Name: "ET_DYN", Value: 3},
	{Name: "ET_CORE", Value: 4},
	{Name: "ET_NUM", Value: 5},
	{Name: "ET_LOOS", Value: 0xfe00},
	{Name: "ET_HIOS", Value: 0xfeff},
	{Name: "ET_LOPROC", Value: 0xff00},
	{Name: "ET_HIPROC", Value: 0xffff},
}...)

// Machines holds e_machine values.
var Machines = model.NewTable[uint16]("e_machine", []model.Constant[uint16]{
	{Name: "EM_NONE", Value: 0},
	{Name: "EM_M32", Value: 1},
	{Name: "EM_SPARC", Value: 2},
	{Name: "EM_386", Value: 3},
	{Name: "EM_68K", Value: 4},
	{Name: "EM_88K", Value: 5},
	{Name: "EM_IAMCU", Value: 6},
	{Name: "EM_860", Value: 7},
	{Name: "EM_MIPS", Value: 8},
	{Name: "EM_S370", Value: 9},
	{Name: "EM_MIPS_RS3_LE", Value: 10},
	{Name: "EM_PARISC", Value: 15},
	{Name: "EM_VPP500", Value: 17},
	{Name: "EM_SPARC32PLUS", Value: 18},
	{Name: "EM_960", Value: 19},
	{Name: "EM_PPC", Value: 20},
	{Name: "EM_PPC64", Value: 21},
	{Name: "EM_S390", Value: 22},
	{Name: "EM_SPU", Value: 23},
	{Name: "EM_V800", Value: 36},
	{Name: "EM_FR20", Value: 37},
	{Name: "EM_RH32", Value: 38},
	{Name: "EM_RCE", Value: 39},
	{Name: "EM_ARM", Value: 40},
	{Name: "EM_FAKE_ALPHA", Value: 41},
	{Name: "EM_SH", Value: 42},
	{Name: "EM_SPARCV9", Value: 43},
	{Name: "EM_TRICORE", Value: 44},
	{Name: "EM_ARC", Value: 45},
	{Name: "EM_H8_300", Value: 46},
	{Name: "EM_H8_300H", Value: 47},
	{Name: "EM_H8S", Value: 48},
	{Name: "EM_H8_500", Value: 49},
	{Name: "EM_IA_64", Value: 50},
	{Name: "EM_MIPS_X", Value: 51},
	{Name: "EM_COLDFIRE", Value: 52},
	{Name: "EM_68HC12", Value: 53},
	{Name: "EM_MMA", Value: 54},
	{Name: "EM_PCP", Value: 55},
	{Name: "EM_NCPU", Value: 56},
	{Name: "EM_NDR1", Value: 57},
	{Name: "EM_STARCORE", Value: 58},
	{Name: "EM_ME16", Value: 59},
	{Name: "EM_ST100", Value: 60},
	{Name: "EM_TINYJ", Value: 61},
	{Name: "EM_X86_64", Value: 62},
	{Name: "EM_PDSP", Value: 63},
	{Name: "EM_PDP10", Value: 64},
	{Name: "EM_PDP11", Value: 65},
	{Name: "EM_FX66", Value: 66},
	{Name: "EM_ST9PLUS", Value: 67},
	{Name: "EM_ST7", Value: 68},
	{Name: "EM_68HC16", Value: 69},
	{Name: "EM_68HC11", Value: 70},
	{Name: "EM_68HC08", Value: 71},
	{Name: "EM_68HC05", Value: 72},
	{Name: "EM_SVX", Value: 73},
	{Name: "EM_ST19", Value: 74},
	{Name: "EM_VAX", Value: 75},
	{Name: "EM_CRIS", Value: 76},
	{Name: "EM_JAVELIN", Value: 77},
	{Name: "EM_FIREPATH", Value: 78},
	{Name: "EM_ZSP", Value: 79},
	{Name: "EM_MMIX", Value: 80},
	{Name: "EM_HUANY", Value: 81},
	{Name: "EM_PRISM", Value: 82},
	{Name: "EM_AVR", Value: 83},
	{Name: "EM_FR30", Value: 84},
	{Name: "EM_D10V", Value: 85},
	{Name: "EM_D30V", Value: 86},
	{Name: "EM_V850", Value: 87},
	{Name: "EM_M32R", Value: 88},
	{Name: "EM_MN10300", Value: 89},
	{Name: "EM_MN10200", Value: 90},
	{Name: "EM_PJ", Value: 91},
	{Name: "EM_OPENRISC", Value: 92},
	{Name: "EM_ARC_COMPACT", Value: 93},
	{Name: "EM_XTENSA", Value: 94},
	{Name: "EM_VIDEOCORE", Value: 95},
	{Name: "EM_TMM_GPP", Value: 96},
	{Name: "EM_NS32K", Value: 97},
	{Name: "EM_TPC", Value: 98},
	{Name: "EM_SNP1K", Value: 99},
	{Name: "EM_ST200", Value: 100},
	{Name: "EM_IP2K", Value: 101},
	{Name: "EM_MAX", Value: 102},
	{Name: "EM_CR", Value: 103},
	{Name: "EM_F2MC16", Value: 104},
	{Name: "EM_MSP430", Value: 105},
	{Name: "EM_BLACKFIN", Value: 106},
	{Name: "EM_SE_C33", Value: 107},
	{Name: "EM_SEP", Value: 108},
	{Name: "EM_ARCA", Value: 109},
	{Name: "EM_UNICORE", Value: 110},
	{Name: "EM_EXCESS", Value: 111},
	{Name: "EM_DXP", Value: 112},
	{Name: "EM_ALTERA_NIOS2", Value: 113},
	{Name: "EM_CRX", Value: 114},
	{Name: "EM_XGATE", Value: 115},
	{Name: "EM_C166", Value: 116},
	{Name: "EM_M16C", Value: 117},
	{Name: "EM_DSPIC30F", Value: 118},
	{Name: "EM_CE", Value: 119},
	{Name: "EM_M32C", Value: 120},
	{Name: "EM_TSK3000", Value: 131},
	{Name: "EM_RS08", Value: 132},
	{Name: "EM_SHARC", Value: 133},
	{Name: "EM_ECOG2", Value: 134},
	{Name: "EM_SCORE7", Value: 135},
	{Name: "EM_DSP24", Value: 136},
	{Name: "EM_VIDEOCORE3", Value: 137},
	{Name: "EM_LATTICEMICO32", Value: 138},
	{Name: "EM_SE_C17", Value: 139},
	{Name: "EM_TI_C6000", Value: 140},
	{Name: "EM_TI_C2000", Value: 141},
	{Name: "EM_TI_C5500", Value: 142},
	{Name: "EM_TI_ARP32", Value: 143},
	{Name: "EM_TI_PRU", Value: 144},
	{Name: "EM_MMDSP_PLUS", Value: 160},
	{Name: "EM_CYPRESS_M8C", Value: 161},
	{Name: "EM_R32C", Value: 162},
	{Name: "EM_TRIMEDIA", Value: 163},
	{Name: "EM_QDSP6", Value: 164},
	{Name: "EM_8051", Value: 165},
	{Name: "EM_STXP7X", Value: 166},
	{Name: "EM_NDS32", Value: 167},
	{Name: "EM_ECOG1X", Value: 168},
	{Name: "EM_MAXQ30", Value: 169},
	{Name: "EM_XIMO16", Value: 170},
	{Name: "EM_MANIK", Value: 171},
	{Name: "EM_CRAYNV2", Value: 172},
	{Name: "EM_RX", Value: 173},
	{Name: "EM_METAG", Value: 174},
	{Name: "EM_MCST_ELBRUS", Value: 175},
	{Name: "EM_ECOG16", Value: 176},
	{Name: "EM_CR16", Value: 177},
	{Name: "EM_ETPU", Value: 178},
	{Name: "EM_SLE9X", Value: 179},
	{Name: "EM_L10M", Value: 180},
	{Name: "EM_K10M", Value: 181},
	{Name: "EM_AARCH64", Value: 183},
	{Name: "EM_AVR32", Value: 185},
	{Name: "EM_STM8", Value: 186},
	{Name: "EM_TILE64", Value: 187},
	{Name: "EM_TILEPRO", Value: 188},
	{Name: "EM_MICROBLAZE", Value: 189},
	{Name: "EM_CUDA", Value: 190},
	{Name: "EM_TILEGX", Value: 191},
	{Name: "EM_CLOUDSHIELD", Value: 192},
	{Name: "EM_COREA_1ST", Value: 193},
	{Name: "EM_COREA_2ND", Value: 194},
	{Name: "EM_ARCV2", Value: 195},
	{Name: "EM_OPEN8", Value: 196},
	{Name: "EM_RL78", Value: 197},
	{Name: "EM_VIDEOCORE5", Value: 198},
	{Name: "EM_78KOR", Value: 199},
	{Name: "EM_56800EX", Value: 200},
	{Name: "EM_BA1", Value: 201},
	{Name: "EM_BA2", Value: 202},
	{Name: "EM_XCORE", Value: 203},
	{Name: "EM_MCHP_PIC", Value: 204},
	{Name: "EM_INTELGT", Value: 205},
	{Name: "EM_KM32", Value: 210},
	{Name: "EM_KMX32", Value: 211},
	{Name: "EM_EMX16", Value: 212},
	{Name: "EM_EMX8", Value: 213},
	{Name: "EM_KVARC", Value: 214},
	{Name: "EM_CDP", Value: 215},
	{Name: "EM_COGE", Value: 216},
	{Name: "EM_COOL", Value: 217},
	{Name: "EM_NORC", Value: 218},
	{Name: "EM_CSR_KALIMBA", Value: 219},
	{Name: "EM_Z80", Value: 220},
	{Name: "EM_VISIUM", Value: 221},
	{Name: "EM_FT32", Value: 222},
	{Name: "EM_MOXIE", Value: 223},
	{Name: "EM_AMDGPU", Value: 224},
	{Name: "EM_RISCV", Value: 243},
	{Name: "EM_BPF", Value: 247},
	{Name: "EM_CSKY", Value: 252},
	{Name: "EM_NUM", Value: 253},
	{Name: "EM_ALPHA", Value: 0x9026},
}...)

// Versions holds e_version values.
var Versions = model.NewTable[uint32]("e_version", []model.Constant[uint32]{
	{Name: "EV_NONE", Value: 0},
	{Name: "EV_CURRENT", Value: 1},
	{Name: "EV_NUM", Value: 2},
}...)

// ProcessorFlags names SPARC e_flags values. The table is open: flags of
// other processors are not constrained.
var ProcessorFlags = model.NewTable[uint32]("e_flags", []model.Constant[uint32]{
	{Name: "EF_SPARCV9_MM", Value: 3},
	{Name: "EF_SPARCV9_TSO", Value: 0},
	{Name: "EF_SPARCV9_PSO", Value: 1},
	{Name: "EF_SPARCV9_RMO", Value: 2},
	{Name: "EF_SPARC_LEDATA", Value: 0x800000},
	{Name: "EF_SPARC_EXT_MASK", Value: 0xffff00},
	{Name: "EF_SPARC_32PLUS", Value: 0x000100},
	{Name: "EF_SPARC_SUN_US1", Value: 0x000200},
	{Name: "EF_SPARC_HAL_R1", Value: 0x000400},
	{Name: "EF_SPARC_SUN_US3", Value: 0x000800},
}...).Open()

// ProgramHeaderCounts names the e_phnum escape value. The table is open.
var ProgramHeaderCounts = model.NewTable("e_phnum",
	model.Constant[uint16]{Name: "PN_XNUM", Value: 0xffff},
).Open()

// SectionIndices names reserved section indices. The table is open since any
// ordinary index is valid.
var SectionIndices = model.NewTable[uint16]("SHN", []model.Constant[uint16]{
	{Name: "SHN_UNDEF", Value: 0},
	{Name: "SHN_LORESERVE", Value: 0xff00},
	{Name: "SHN_LOPROC", Value: 0xff00},
	{Name: "SHN_BEFORE", Value: 0xff00},
	{Name: "SHN_AFTER", Value: 0xff01},
	{Name: "SHN_HIPROC", Value: 0xff1f},
	{Name: "SHN_LOOS", Value: 0xff20},
	{Name: "SHN_HIOS", Value: 0xff3f},
	{Name: "SHN_ABS", Value: 0xfff1},
	{Name: "SHN_COMMON", Value: 0xfff2},
	{Name: "SHN_XINDEX", Value: 0xffff},
	{Name: "SHN_HIRESERVE", Value: 0xffff},
}...).Open()

// SectionTypes holds sh_type values.
var SectionTypes = model.NewTable[uint32]("sh_type", []model.Constant[uint32]{
	{Name: "SHT_NULL", Value: 0},
	{Name: "SHT_PROGBITS", Value: 1},
	{Name: "SHT_SYMTAB", Value: 2},
	{Name: "SHT_STRTAB", Value: 3},
	{Name: "SHT_RELA", Value: 4},
	{Name: "SHT_HASH", Value: 5},
	{Name: "SHT_DYNAMIC", Value: 6},
	{Name: "SHT_NOTE", Value: 7},
	{Name: "SHT_NOBITS", Value: 8},
	{Name: "SHT_REL", Value: 9},
	{Name: "SHT_SHLIB", Value: 10},
	{Name: "SHT_DYNSYM", Value: 11},
	{Name: "SHT_INIT_ARRAY", Value: 14},
	{Name: "SHT_FINI_ARRAY", Value: 15},
	{Name: "SHT_PREINIT_ARRAY", Value: 16},
	{Name: "SHT_GROUP", Value: 17},
	{Name: "SHT_SYMTAB_SHNDX", Value: 18},
	{Name: "SHT_NUM", Value: 19},
	{Name: "SHT_LOOS", Value: 0x60000000},
	{Name: "SHT_GNU_ATTRIBUTES", Value: 0x6ffffff5},
	{Name: "SHT_GNU_HASH", Value: 0x6ffffff6},
	{Name: "SHT_GNU_LIBLIST", Value: 0x6ffffff7},
	{Name: "SHT_CHECKSUM", Value: 0x6ffffff8},
	{Name: "SHT_LOSUNW", Value: 0x6ffffffa},
	{Name: "SHT_SUNW_move", Value: 0x6ffffffa},
	{Name: "SHT_SUNW_COMDAT", Value: 0x6ffffffb},
	{Name: "SHT_SUNW_syminfo", Value: 0x6ffffffc},
	{Name: "SHT_GNU_verdef", Value: 0x6ffffffd},
	{Name: "SHT_GNU_verneed", Value: 0x6ffffffe},
	{Name: "SHT_GNU_versym", Value: 0x6fffffff},
	{Name: "SHT_HISUNW", Value: 0x6fffffff},
	{Name: "SHT_HIOS", Value: 0x6fffffff},
	{Name: "SHT_LOPROC", Value: 0x70000000},
	{Name: "SHT_X86_64_UNWIND", Value: 0x70000001},
	{Name: "SHT_ARM_EXIDX", Value: 0x70000001},
	{Name: "SHT_ARM_ATTRIBUTES", Value: 0x70000003},
	{Name: "SHT_RISCV_ATTRIBUTES", Value: 0x70000003},
	{Name: "SHT_HIPROC", Value: 0x7fffffff},
	{Name: "SHT_LOUSER", Value: 0x80000000},
	{Name: "SHT_HIUSER", Value: 0x8fffffff},
}...)

// SectionFlags holds sh_flags bits and masks.
var SectionFlags = model.NewTable[uint64]("sh_flags", []model.Constant[uint64]{
	{Name: "SHF_WRITE", Value: 1 << 0},
	{Name: "SHF_ALLOC", Value: 1 << 1},
	{Name: "SHF_EXECINSTR", Value: 1 << 2},
	{Name: "SHF_MERGE", Value: 1 << 4},
	{Name: "SHF_STRINGS", Value: 1 << 5},
	{Name: "SHF_INFO_LINK", Value: 1 << 6},
	{Name: "SHF_LINK_ORDER", Value: 1 << 7},
	{Name: "SHF_OS_NONCONFORMING", Value: 1 << 8},
	{Name: "SHF_GROUP", Value: 1 << 9},
	{Name: "SHF_TLS", Value: 1 << 10},
	{Name: "SHF_COMPRESSED", Value: 1 << 11},
	{Name: "SHF_GNU_RETAIN", Value: 1 << 21},
	{Name: "SHF_MASKOS", Value: 0x0ff00000},
	{Name: "SHF_ORDERED", Value: 1 << 30},
	{Name: "SHF_EXCLUDE", Value: 1 << 31},
	{Name: "SHF_MASKPROC", Value: 0xf0000000},
}...)
