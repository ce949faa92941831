// Package hash computes stable 64-bit identifiers for names decoded from binaries.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// IDBytes computes the xxHash64 of raw bytes, e.g. a name still inside a buffer.
func IDBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
