package chicken

import (
	"fmt"
	"strings"
)

// ContentEncoding identifies a content transfer encoding scheme, so that a
// pipeline can dispatch to the matching [ContentEncoder].
type ContentEncoding int

const (
	EncodingDefault ContentEncoding = iota
	Encoding7Bit
	Encoding8Bit
	EncodingBinary
	EncodingBase64
	EncodingQuotedPrintable
	EncodingUUEncode
	EncodingChicken
)

var encodingNames = [...]string{
	EncodingDefault:         "default",
	Encoding7Bit:            "7bit",
	Encoding8Bit:            "8bit",
	EncodingBinary:          "binary",
	EncodingBase64:          "base64",
	EncodingQuotedPrintable: "quoted-printable",
	EncodingUUEncode:        "x-uuencode",
	EncodingChicken:         "chicken",
}

func (e ContentEncoding) String() string {
	if e >= 0 && int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("ContentEncoding(%d)", int(e))
}

// ParseContentEncoding returns the ContentEncoding named s, ignoring case.
func ParseContentEncoding(s string) (ContentEncoding, error) {
	for i, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return ContentEncoding(i), nil
		}
	}
	return EncodingDefault, fmt.Errorf("unknown content encoding %q", s)
}

// ContentEncoder is the capability shared by every encoding scheme of the
// pipeline. Stateful schemes keep partial input between calls and emit it
// on Flush; stateless ones treat Flush exactly like Encode.
type ContentEncoder interface {
	// Encoding returns the scheme implemented by the encoder.
	Encoding() ContentEncoding

	// EstimateOutputLength returns the output capacity required to encode
	// length input bytes.
	EstimateOutputLength(length int) int

	// Encode encodes src[start:start+length] into dst and returns the number
	// of bytes written.
	Encode(dst, src []byte, start, length int) (int, error)

	// Flush encodes src[start:start+length] into dst, followed by any state
	// retained from previous calls.
	Flush(dst, src []byte, start, length int) (int, error)

	// Reset discards any retained state.
	Reset()

	// Clone returns an independent encoder with identical future behaviour.
	Clone() ContentEncoder
}
