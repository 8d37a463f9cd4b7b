package configster

import (
	"io"
	"os"
)

// ParseFile reads the named configuration file and parses it with the
// given attribute delimiter. Read failures are returned as a *ReadError;
// the parse itself cannot fail.
func ParseFile(path string, delimiter rune) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(src, delimiter), nil
}

// ParseReader reads configuration text from r until EOF and parses it
// with the given attribute delimiter.
func ParseReader(r io.Reader, delimiter rune) (Config, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return Parse(src, delimiter), nil
}
