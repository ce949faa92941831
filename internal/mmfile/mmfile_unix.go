//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type mapping struct{}

func open(path string, mode Mode) (*File, error) {
	flag, prot := os.O_RDONLY, unix.PROT_READ
	if mode == ReadWrite {
		flag, prot = os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close() // mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &File{path: path, mode: mode, data: []byte{}, impl: mapping{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	return &File{path: path, mode: mode, data: data, impl: mapping{}}, nil
}

func (mapping) sync(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

func (mapping) close(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}

	return err
}
