package chicken

// encodeGeneric writes the token and separator of every byte in src to dst.
// dst must be at least MaxLength(len(src)) bytes, it panics on a shorter dst.
// Returns the number of bytes written to dst.
func encodeGeneric(dst, src []byte, t *tokenTable) int {
	_ = dst[:MaxLength(len(src))]

	p := 0
	for _, c := range src {
		tok := &t[c]
		p += copy(dst[p:], tok.b[:tok.n])
		dst[p] = separator
		p++
	}

	return p
}
