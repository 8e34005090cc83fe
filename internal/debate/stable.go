package debate

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
	"unicode"
)

// stableIndex maps a key to an index in [0, n) via the first four bytes
// of a salted SHA-256 digest. The same key and salt always produce the
// same index, across processes and re-runs.
func stableIndex(key string, n int, salt string) int {
	if n < 1 {
		return 0
	}
	sum := sha256.Sum256([]byte(salt + key))
	return int(binary.BigEndian.Uint32(sum[:4]) % uint32(n))
}

// normalize lowercases s, strips everything but letters, digits and
// spaces, and collapses runs of whitespace. Comparator side selection
// hashes normalized text so that "Coffee vs Tea" and "coffee VS tea"
// land on the same side.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
