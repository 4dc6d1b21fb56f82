// Package fhstream reads the container of FreeHand documents.
//
// It provides a big-endian stream Reader, the header sniffing,
// the decompression of recent versions and the record framing.
// The decoding of individual records is delegated to the functions
// registered with Register, which fill a fhdoc.Collection.
package fhstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// ErrEndOfStream is returned when reading past the available bytes.
var ErrEndOfStream = errors.New("fhstream: unexpected end of stream")

// FormatError indicates that the stream violates the file format.
type FormatError struct {
	Pos int64
	Err error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "invalid FreeHand document" + middle + tail
}

func (err *FormatError) Unwrap() error { return err.Err }

// Reader reads big-endian values from an in-memory buffer.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Tell returns the current position.
func (r *Reader) Tell() int { return r.pos }

// Len returns the total length of the stream.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Seek moves to the absolute position pos, which may be
// the end of the stream.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("seeking to %d: %w", pos, ErrEndOfStream)
	}
	r.pos = pos
	return nil
}

// Skip advances by n bytes.
func (r *Reader) Skip(n int) error { return r.Seek(r.pos + n) }

// Bytes returns the next n bytes, without copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("reading %d bytes at %d: %w", n, r.pos, ErrEndOfStream)
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) S16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *Reader) S32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// Fixed reads a signed 16.16 fixed point number.
func (r *Reader) Fixed() (float64, error) {
	v, err := r.S32()
	return float64(v) / 65536, err
}

// CString reads a NUL terminated string. The terminator is consumed
// but not returned.
func (r *Reader) CString() (string, error) {
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			s := string(r.data[r.pos:i])
			r.pos = i + 1
			return s, nil
		}
	}
	return "", fmt.Errorf("unterminated string at %d: %w", r.pos, ErrEndOfStream)
}
