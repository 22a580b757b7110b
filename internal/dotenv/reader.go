package dotenv

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// DefaultMaxLineLength is the line buffer size. At most DefaultMaxLineLength-1
// bytes are read per line.
const DefaultMaxLineLength = 4096

type lineReader struct {
	r   *bufio.Reader
	max int
	buf []byte
}

func newLineReader(r io.Reader, max int) *lineReader {
	if max < 2 {
		max = DefaultMaxLineLength
	}
	return &lineReader{r: bufio.NewReader(r), max: max}
}

// next returns the next line without its newline. Lines longer than the
// buffer come back as consecutive chunks of max-1 bytes. ok is false once the
// input is exhausted.
func (lr *lineReader) next() (line string, ok bool, err error) {
	lr.buf = lr.buf[:0]
	limit := lr.max - 1
	for len(lr.buf) < limit {
		chunk, err := lr.r.Peek(1)
		if len(chunk) == 0 {
			if errors.Is(err, io.EOF) {
				return string(lr.buf), len(lr.buf) > 0, nil
			}
			return string(lr.buf), false, err
		}

		room := limit - len(lr.buf)
		window, _ := lr.r.Peek(min(room, lr.r.Buffered()))
		if i := bytes.IndexByte(window, '\n'); i >= 0 {
			lr.buf = append(lr.buf, window[:i]...)
			_, _ = lr.r.Discard(i + 1)
			return string(lr.buf), true, nil
		}
		lr.buf = append(lr.buf, window...)
		_, _ = lr.r.Discard(len(window))
	}
	return string(lr.buf), true, nil
}
