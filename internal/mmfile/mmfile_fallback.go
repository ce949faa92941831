//go:build !unix

package mmfile

import "os"

// copied holds the file contents in memory when mmap is not available.
// Sync writes them back.
type copied struct {
	path string
}

func open(path string, mode Mode) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &File{path: path, mode: mode, data: data, impl: copied{path: path}}, nil
}

func (c copied) sync(data []byte) error {
	info, err := os.Stat(c.path)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, info.Mode().Perm())
}

func (copied) close([]byte) error { return nil }
