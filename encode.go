package chicken

// EncodedLen returns the exact length of the encoding of src.
func EncodedLen(src []byte) int {
	n := len(src) * (tokenMandatory + 1)
	for _, c := range src {
		if c&0x80 != 0 {
			n++
		}
	}
	return n
}

// AppendEncode appends the encoding of src to dst and returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	n := len(dst)
	if grow := n + MaxLength(len(src)) - cap(dst); grow > 0 {
		dst = append(dst[:cap(dst)], make([]byte, grow)...)
	}
	dst = dst[:n+MaxLength(len(src))]

	written := encodeGeneric(dst[n:], src, lookupTable())

	return dst[:n+written]
}

// EncodeToString returns the encoding of src.
func EncodeToString(src []byte) string {
	return string(AppendEncode(nil, src))
}
