// Package decode turns raw captures of the Debug Communication Channel back
// into the byte stream written by the firmware.
//
// Debuggers dump every word read from DBGDTRTX, four bytes per word. The
// firmware only ever sends zero-extended bytes, so the stream is the low byte
// of every word in arrival order.
package decode

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Reader reads the byte stream from a word capture.
type Reader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	word  [4]byte

	// Dropped counts words with any of the upper 24 bits set. These are not
	// produced by the dcc package and are skipped.
	Dropped int
}

func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: bufio.NewReader(r), order: order}
}

// Read returns io.ErrUnexpectedEOF if the capture ends with an incomplete
// word.
func (d *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		// Don't block on a live capture if there is something to return.
		if n > 0 && d.r.Buffered() < len(d.word) {
			break
		}
		_, err = io.ReadFull(d.r, d.word[:])
		if err != nil {
			return n, err
		}
		word := d.order.Uint32(d.word[:])
		if word>>8 != 0 {
			d.Dropped++
			continue
		}
		p[n] = byte(word)
		n++
	}
	return n, nil
}

// ParseOrder parses "le" or "be".
func ParseOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "le", "little":
		return binary.LittleEndian, nil
	case "be", "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("byte order %q: must be le or be", s)
}

// Charset returns a decoder from the IANA charset name to UTF-8, or nil if
// name is empty.
func Charset(name string) (*encoding.Decoder, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: not supported", name)
	}
	return enc.NewDecoder(), nil
}

// Text wraps r to convert from charset to UTF-8. An empty charset returns r.
func Text(r io.Reader, charset string) (io.Reader, error) {
	dec, err := Charset(charset)
	if err != nil || dec == nil {
		return r, err
	}
	return transform.NewReader(r, dec), nil
}
