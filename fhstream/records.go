package fhstream

import (
	"fmt"
	"io"
	"sync"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/internal/logger"
)

// ErrorMode is the strategy used when a record has no registered decoder.
// Since the size of a record is only known by its decoder, the
// decoding can't continue after such a record.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently stops the decoding,
	// keeping the records collected so far.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode stops the decoding with a warning log.
	WarnErrorMode
	// StrictErrorMode fails.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<unknown ErrorMode %d>", m)
	}
}

// Decode parses the mode name, as returned by String.
// It makes ErrorMode usable as a configuration value.
func (m *ErrorMode) Decode(value string) error {
	switch value {
	case "ignore", "":
		*m = IgnoreErrorMode
	case "warn":
		*m = WarnErrorMode
	case "strict":
		*m = StrictErrorMode
	default:
		return fmt.Errorf("invalid error mode %q", value)
	}
	return nil
}

// RecordFunc decodes the record with the given id, starting at
// the current position of r, and stores its content in c.
// It must consume exactly the bytes of the record.
type RecordFunc func(r *Reader, c *fhdoc.Collection, id fhdoc.ID) error

var (
	recordFuncsMu sync.RWMutex
	recordFuncs   = map[string]RecordFunc{}
)

// Register installs the decoder for the records of the given
// name, as found in the dictionary of documents. A nil fn removes it.
func Register(name string, fn RecordFunc) {
	recordFuncsMu.Lock()
	defer recordFuncsMu.Unlock()
	if fn == nil {
		delete(recordFuncs, name)
		return
	}
	recordFuncs[name] = fn
}

func recordFunc(name string) RecordFunc {
	recordFuncsMu.RLock()
	defer recordFuncsMu.RUnlock()
	return recordFuncs[name]
}

// Dictionary maps the record keys to the record names.
type Dictionary map[uint16]string

// readDictionary reads a count followed by (key, name) entries.
func readDictionary(r *Reader) (Dictionary, error) {
	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	dict := make(Dictionary)
	for i := uint32(0); i < count; i++ {
		key, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("dictionary: %w", err)
		}
		name, err := r.CString()
		if err != nil {
			return nil, fmt.Errorf("dictionary: %w", err)
		}
		dict[key] = name
	}
	return dict, nil
}

// readRecordKeys reads a count followed by the key of each record.
func readRecordKeys(r *Reader) ([]uint16, error) {
	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("record list: %w", err)
	}
	if int(count) > r.Remaining()/2 {
		return nil, &FormatError{Pos: int64(r.Tell()), Err: fmt.Errorf("invalid record count %d", count)}
	}
	keys := make([]uint16, count)
	for i := range keys {
		keys[i], err = r.U16()
		if err != nil {
			return nil, fmt.Errorf("record list: %w", err)
		}
	}
	return keys, nil
}

// Decode reads a whole document, calling the registered decoders
// to fill the returned collection. The record with index i in the record
// list is collected with ID i+1.
//
// errMode determines if the decoding ignores, errors out, or logs a warning
// when it finds a record without decoder.
func Decode(rs io.ReadSeeker, errMode ErrorMode) (*fhdoc.Collection, error) {
	h, err := Detect(rs)
	if err != nil {
		return nil, err
	}
	data, err := payload(rs, h)
	if err != nil {
		return nil, err
	}
	r := NewReader(data)

	dict, err := readDictionary(r)
	if err != nil {
		return nil, err
	}
	keys, err := readRecordKeys(r)
	if err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Debug("fhstream: decoding", "version", h.Version, "records", len(keys), "names", len(dict))

	c := fhdoc.NewCollection()
	for i, key := range keys {
		id := fhdoc.ID(i + 1)
		name, ok := dict[key]
		if !ok {
			return c, &FormatError{Pos: int64(r.Tell()), Err: fmt.Errorf("record %d has unknown key %d", id, key)}
		}
		fn := recordFunc(name)
		if fn == nil {
			switch errMode {
			case StrictErrorMode:
				return c, &FormatError{Pos: int64(r.Tell()), Err: fmt.Errorf("no decoder for record %d (%s)", id, name)}
			case WarnErrorMode:
				log.Warn("fhstream: no decoder, stopping", "record", id, "name", name, "skipped", len(keys)-i)
			}
			return c, nil
		}
		start := r.Tell()
		if err := fn(r, c, id); err != nil {
			return c, fmt.Errorf("record %d (%s) at %d: %w", id, name, start, err)
		}
	}
	return c, nil
}
