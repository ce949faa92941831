// Package zip walks the local file headers of a ZIP archive.
//
// Only the sequential local headers are read. Payloads are located and, for
// stored entries, optionally checked against their CRC-32; nothing is
// decompressed.
package zip
