package action

import (
	"bufio"
	"errors"
	"io"
)

// Reader turns an input stream into one Action per line.
type Reader struct {
	r   *bufio.Reader
	err error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next blocks for the next line. Unrecognized lines, including lines longer
// than the read buffer, yield a None action. The end of the stream, or a read
// error, yields Quit.
func (r *Reader) Next(mode Mode) Action {
	line, isPrefix, err := r.r.ReadLine()
	if err != nil {
		r.setErr(err)
		return Action{Kind: Quit}
	}
	if isPrefix {
		for isPrefix && err == nil {
			_, isPrefix, err = r.r.ReadLine()
		}
		r.setErr(err)
		return Action{}
	}
	a, _ := Parse(string(line), mode)
	return a
}

// Err returns the read error that ended the stream, if any. A clean end of
// input is not an error.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) setErr(err error) {
	if err != nil && !errors.Is(err, io.EOF) && r.err == nil {
		r.err = err
	}
}
