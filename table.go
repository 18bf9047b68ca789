package chicken

import "sync"

const (
	upperWord  = "CHICKEN"
	lowerWord  = "chicken"
	terminator = '.'
	separator  = ' '

	// tokenMandatory is the number of letters every token carries, one per bit 0..6.
	tokenMandatory = 7
	// tokenMax is the longest token, reached when bit 7 adds the terminator.
	tokenMax = tokenMandatory + 1
)

// token is the encoded form of a single byte value.
type token struct {
	b [tokenMax]byte
	n uint8 // 7, or 8 when the high bit is set
}

func (t *token) String() string {
	return string(t.b[:t.n])
}

type tokenTable [256]token

// Both words must cover exactly bits 0..6.
var (
	_ = [1]struct{}{}[len(upperWord)-tokenMandatory]
	_ = [1]struct{}{}[len(lowerWord)-tokenMandatory]
)

var (
	tableInitOnce sync.Once
	table         *tokenTable
)

// lookupTable returns the shared token table, building it on first use.
// The returned table must not be modified.
func lookupTable() *tokenTable {
	tableInitOnce.Do(func() {
		table = buildTokenTable()
	})
	return table
}

func buildTokenTable() *tokenTable {
	t := new(tokenTable)
	for n := 0; n < 256; n++ {
		tok := &t[n]
		for i := 0; i < tokenMandatory; i++ {
			if n&(1<<i) != 0 {
				tok.b[i] = upperWord[i]
			} else {
				tok.b[i] = lowerWord[i]
			}
		}
		tok.n = tokenMandatory
		if n&0x80 != 0 {
			tok.b[tokenMandatory] = terminator
			tok.n++
		}
	}
	return t
}

// Token returns the token byte value b encodes to, without the trailing separator.
func Token(b byte) string {
	return lookupTable()[b].String()
}
