package fhstream

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

const (
	minVersion        = 3
	maxVersion        = 11
	minCompressedVers = 9
)

var errUnknownHeader = errors.New("unknown header")

// Header describes the container of a document.
type Header struct {
	Version int // FreeHand version, 3 and 5 to 11 are supported
}

// Compressed returns true if the payload is zlib compressed.
func (h Header) Compressed() bool { return h.Version >= minCompressedVers }

// parseHeader interprets the 4 byte magic number:
// "FHD3" for version 3, "AGD" followed by a digit d for version d+5.
func parseHeader(magic []byte) (Header, error) {
	if len(magic) < 4 {
		return Header{}, ErrEndOfStream
	}
	switch {
	case bytes.Equal(magic[:4], []byte("FHD3")):
		return Header{Version: 3}, nil
	case bytes.Equal(magic[:3], []byte("AGD")) && '0' <= magic[3] && magic[3] <= '9':
		version := int(magic[3]-'0') + 5
		if version > maxVersion {
			return Header{}, fmt.Errorf("unsupported version %d", version)
		}
		return Header{Version: version}, nil
	}
	return Header{}, errUnknownHeader
}

// Detect reads the header of the stream, which is
// then rewound to its start.
func Detect(rs io.ReadSeeker) (Header, error) {
	var magic [4]byte
	_, err := io.ReadFull(rs, magic[:])
	if _, errSeek := rs.Seek(0, io.SeekStart); err == nil {
		err = errSeek
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, ErrEndOfStream
		}
		return Header{}, err
	}
	h, err := parseHeader(magic[:])
	if err != nil {
		return Header{}, &FormatError{Err: err}
	}
	return h, nil
}

// IsSupported returns true if the stream looks like a supported document.
// It never fails, and rewinds the stream.
func IsSupported(rs io.ReadSeeker) bool {
	_, err := Detect(rs)
	return err == nil
}

// payload reads the whole document and returns the decompressed
// record area, which follows the magic and its length.
func payload(rs io.Reader, h Header) ([]byte, error) {
	data, err := io.ReadAll(rs)
	if err != nil {
		return nil, err
	}
	r := NewReader(data)
	if err = r.Skip(4); err != nil {
		return nil, err
	}
	length, err := r.U32()
	if err != nil {
		return nil, err
	}
	body, err := r.Bytes(int(length))
	if err != nil {
		return nil, err
	}
	if !h.Compressed() {
		return body, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, &FormatError{Pos: 8, Err: fmt.Errorf("compressed payload: %w", err)}
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, &FormatError{Pos: 8, Err: fmt.Errorf("compressed payload: %w", err)}
	}
	return out, nil
}
