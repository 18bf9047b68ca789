package chicken

// MaxLength returns the maximum possible length of encoded output,
// given an input of length bytes.
//
// Every byte becomes at most 8 token characters plus a separator, so the
// bound is exact when all input bytes have their high bit set.
func MaxLength(length int) int {
	return length * (tokenMax + 1)
}
