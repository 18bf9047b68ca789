package chicken

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNilSource       = fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	ErrNilDestination  = fmt.Errorf("%w: destination is nil", ErrInvalidArgument)
	ErrOutOfRange      = fmt.Errorf("%w: range is outside of source", ErrInvalidArgument)
	ErrShortBuffer     = fmt.Errorf("%w: destination is smaller than MaxLength", ErrInvalidArgument)
)

// Encoder encodes bytes to chicken tokens.
//
// An Encoder carries no state between calls: every call to Encode is
// self-contained, Flush behaves exactly like Encode and Reset does nothing.
// The zero value is ready to use and an Encoder may be used concurrently.
type Encoder struct {
	table *tokenTable
}

var _ ContentEncoder = (*Encoder)(nil)

// NewEncoder returns a new [Encoder].
func NewEncoder() *Encoder {
	return &Encoder{table: lookupTable()}
}

func (e *Encoder) tokens() *tokenTable {
	if e.table != nil {
		return e.table
	}
	return lookupTable()
}

// Encoding returns [EncodingChicken].
func (e *Encoder) Encoding() ContentEncoding {
	return EncodingChicken
}

// EstimateOutputLength returns [MaxLength] of length.
func (e *Encoder) EstimateOutputLength(length int) int {
	return MaxLength(length)
}

// Encode writes the encoding of src[start:start+length] to dst and returns
// the number of bytes written.
//
// len(dst) must be at least MaxLength(length). Arguments are validated before
// anything is written, so on error dst is left untouched.
func (e *Encoder) Encode(dst, src []byte, start, length int) (int, error) {
	if err := validate(dst, src, start, length); err != nil {
		return 0, err
	}

	if length == 0 {
		return 0, nil
	}

	return encodeGeneric(dst, src[start:start+length], e.tokens()), nil
}

// Flush is identical to Encode, there is never any pending state to emit.
func (e *Encoder) Flush(dst, src []byte, start, length int) (int, error) {
	return e.Encode(dst, src, start, length)
}

// Reset is a no-op.
func (e *Encoder) Reset() {}

// Clone returns a new [Encoder] sharing only the immutable token table.
func (e *Encoder) Clone() ContentEncoder {
	return &Encoder{table: e.tokens()}
}

func validate(dst, src []byte, start, length int) error {
	if src == nil {
		return ErrNilSource
	}
	if dst == nil {
		return ErrNilDestination
	}
	if start < 0 || length < 0 || start > len(src)-length {
		return ErrOutOfRange
	}
	if len(dst) < MaxLength(length) {
		return ErrShortBuffer
	}
	return nil
}
