package chicken

import (
	"errors"
	"io"
	"sync"
)

// Writer is an [io.WriteCloser] encoding everything written to it.
type Writer struct {
	w         io.Writer
	enc       Encoder
	processed int64

	buf []byte

	writeMu sync.Mutex
}

// NewWriter returns a new [Writer].
// Writes to the returned writer are encoded and written to w.
//
// Since the encoding is stateless, every Write is passed on to w in full
// before it returns and Close never has anything left to emit.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		enc: Encoder{table: lookupTable()},
	}
}

// Reset discards the [Writer] ew's state and makes it equivalent to the
// result of its original state from [NewWriter], but writing to w instead.
// This permits reusing a [Writer] rather than allocating a new one.
func (ew *Writer) Reset(w io.Writer) {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	ew.w = w
	ew.processed = 0
}

var errWriterNil = errors.New("writer is nil")

// Write writes the encoded form of p to the underlying [io.Writer].
func (ew *Writer) Write(p []byte) (n int, err error) {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	if ew.w == nil {
		return 0, errWriterNil
	}

	if len(p) == 0 {
		return 0, nil
	}

	if grow := MaxLength(len(p)) - len(ew.buf); grow > 0 {
		ew.buf = append(ew.buf, make([]byte, grow)...)
	}

	written, err := ew.enc.Encode(ew.buf, p, 0, len(p))
	if err != nil {
		return 0, err
	}

	if _, err = ew.w.Write(ew.buf[:written]); err != nil {
		return 0, err
	}

	ew.processed += int64(len(p))

	return len(p), nil
}

// Processed returns the number of input bytes encoded since the last Reset.
func (ew *Writer) Processed() int64 {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	return ew.processed
}

// Close detaches the [Writer] from the underlying writer.
// It is an error to call Write after calling Close.
func (ew *Writer) Close() error {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	if ew.w == nil {
		return errWriterNil
	}
	ew.w = nil

	return nil
}
