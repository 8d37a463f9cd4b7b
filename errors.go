package configster

import "fmt"

// ReadError reports a failure at the file-reading boundary. The parser
// itself never fails; only opening or reading the source can. Callers can
// distinguish a missing file from other I/O failures with
// errors.Is(err, fs.ErrNotExist).
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading config: %v", e.Err)
	}
	return fmt.Sprintf("reading config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
