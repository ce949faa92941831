// Package endian provides byte order utilities for the interpretation engine.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine, and adds width-generic helpers so that scalar
// descriptors of any width (1, 2, 4 or 8 bytes) can share one decode and one
// encode path.
//
// # Basic Usage
//
// All formats modeled by elfeat are little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	v := endian.Uint(engine, b[:4])        // 4-byte unsigned read
//	endian.PutUint(engine, b[:4], v+1)     // overwrite in place
//	b = endian.AppendUint(engine, b, v, 4) // 4-byte unsigned append
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Uint reads an unsigned integer whose width is len(b).
//
// Parameters:
//   - engine: Endian engine for byte order
//   - b: Exactly 1, 2, 4 or 8 bytes
//
// Returns:
//   - uint64: The decoded value, zero-extended. Zero for unsupported widths.
func Uint(engine EndianEngine, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(engine.Uint16(b))
	case 4:
		return uint64(engine.Uint32(b))
	case 8:
		return engine.Uint64(b)
	default:
		return 0
	}
}

// PutUint writes the low len(b) bytes of v into b.
// Unsupported widths leave b untouched.
func PutUint(engine EndianEngine, b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v)) //nolint: gosec
	case 4:
		engine.PutUint32(b, uint32(v)) //nolint: gosec
	case 8:
		engine.PutUint64(b, v)
	}
}

// AppendUint appends the low width bytes of v to dst.
// Unsupported widths return dst unchanged.
func AppendUint(engine EndianEngine, dst []byte, v uint64, width int) []byte {
	switch width {
	case 1:
		return append(dst, byte(v))
	case 2:
		return engine.AppendUint16(dst, uint16(v)) //nolint: gosec
	case 4:
		return engine.AppendUint32(dst, uint32(v)) //nolint: gosec
	case 8:
		return engine.AppendUint64(dst, v)
	default:
		return dst
	}
}
