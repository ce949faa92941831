package zip

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName converts a raw file name to UTF-8. Names are UTF-8 when the
// UTF8 general purpose flag is set and IBM code page 437 otherwise.
func DecodeName(raw []byte, utf8Flag bool) (string, error) {
	if utf8Flag || isASCII(raw) {
		if !utf8.Valid(raw) {
			return "", errors.New("file name is flagged UTF-8 but is not valid UTF-8")
		}

		return string(raw), nil
	}

	decoded, err := charmap.CodePage437.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode CP437 file name: %w", err)
	}

	return string(decoded), nil
}

// EncodeName converts a name to the raw form DecodeName reads with the
// given flag.
func EncodeName(name string, utf8Flag bool) ([]byte, error) {
	if utf8Flag {
		return []byte(name), nil
	}

	encoded, err := charmap.CodePage437.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to encode file name to CP437: %w", err)
	}

	return encoded, nil
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}

	return true
}
