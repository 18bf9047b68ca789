package chicken

import (
	"fmt"
)

// version is packed as major<<16 | minor<<8 | patch. The major number
// changes only if the token of any byte value changes.
var version = 0x010000

// Version returns the version of the encoder.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// EncodeKernel returns the name of the implementation being used for encode operations
func EncodeKernel() string {
	return "generic"
}
