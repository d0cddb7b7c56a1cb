package worklist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrTruncated = errors.New("worklist: resume data is truncated")
	ErrTrailing  = errors.New("worklist: resume data has trailing bytes")
)

// Writer appends fixed-size little-endian records to a resume blob. The
// first record is always the version.
type Writer struct {
	buf []byte
}

// NewWriter starts a blob tagged with version.
func NewWriter(version int32) *Writer {
	w := &Writer{}
	w.Int32(version)
	return w
}

func (w *Writer) Int32(v int32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v)) }

func (w *Writer) Int64(v int64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v)) }

// Int writes v as an Int32 record; callers keep their values in range.
func (w *Writer) Int(v int) { w.Int32(int32(v)) }

func (w *Writer) Bool(v bool) {
	var b byte
	if v {
		b = 1
	}
	w.buf = append(w.buf, b)
}

func (w *Writer) Float64(v float64) { w.Int64(int64(math.Float64bits(v))) }

// Raw appends b as is. It is meant for nesting a complete blob at the end.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// Bytes returns the blob written so far.
func (w *Writer) Bytes() []byte { return w.buf }

// Reader consumes records in the order a Writer produced them. The first
// error sticks: later reads return zero values and Err keeps reporting it.
type Reader struct {
	buf     []byte
	version int32
	err     error
}

// NewReader reads the version record of blob.
func NewReader(blob []byte) *Reader {
	r := &Reader{buf: blob}
	r.version = r.Int32()
	return r
}

// Version returns the version the blob was written with.
func (r *Reader) Version() int32 { return r.version }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = ErrTruncated
		r.buf = nil
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *Reader) Int32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

func (r *Reader) Int64() int64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (r *Reader) Int() int { return int(r.Int32()) }

func (r *Reader) Bool() bool {
	b := r.take(1)
	return b != nil && b[0] != 0
}

func (r *Reader) Float64() float64 { return math.Float64frombits(uint64(r.Int64())) }

// Rest consumes and returns every unread byte.
func (r *Reader) Rest() []byte {
	if r.err != nil {
		return nil
	}
	b := r.buf
	r.buf = nil
	return b
}

// Err returns the first error met while reading.
func (r *Reader) Err() error { return r.err }

// Close reports the sticky error, or ErrTrailing when bytes were left
// unread.
func (r *Reader) Close() error {
	if r.err != nil {
		return r.err
	}
	if len(r.buf) != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailing, len(r.buf))
	}
	return nil
}

// Encode writes the entry count followed by every entry.
func (l *List) Encode(w *Writer) {
	w.Int(len(l.entries))
	for _, e := range l.entries {
		for _, v := range [...]int{e.XStart, e.XStop, e.XBegin, e.YStart, e.YStop, e.YBegin, e.Pass, e.Sym} {
			w.Int(v)
		}
	}
}

// Decode reads a list written by Encode. The result holds at most capacity
// entries.
func Decode(r *Reader, capacity int) (*List, error) {
	n := r.Int()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if n < 0 || (capacity > 0 && n > capacity) {
		return nil, fmt.Errorf("%w: %d entries, capacity %d", ErrFull, n, capacity)
	}
	entries := make([]Entry, 0, min(n, 1024))
	for range n {
		e := Entry{
			XStart: r.Int(), XStop: r.Int(), XBegin: r.Int(),
			YStart: r.Int(), YStop: r.Int(), YBegin: r.Int(),
			Pass: r.Int(), Sym: r.Int(),
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return FromEntries(capacity, entries)
}
