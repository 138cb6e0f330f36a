package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader turns lines from a stream into intents
type Reader struct {
	device Device
	r      *bufio.Reader
}

// NewReader reads commands from r
func NewReader(r io.Reader, device Device) *Reader {
	return &Reader{device: device, r: bufio.NewReader(r)}
}

// ReadLine reads one line without its line ending. A final unterminated line
// is returned without error; io.EOF comes once nothing is left.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadIntent reads one line and maps it to an intent
func (r *Reader) ReadIntent() (Intent, error) {
	line, err := r.ReadLine()
	if err != nil {
		return Intent{}, err
	}
	return Parse(r.device, line), nil
}
