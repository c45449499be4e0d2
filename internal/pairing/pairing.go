package pairing

import (
	"crypto/rand"
	"strings"
)

// Alphabet is the uppercase-alphanumeric set pairing codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random code of length characters from Alphabet.
// Codes are unpredictable but not unique; callers enforce uniqueness
// against the store.
func Generate(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand.Read never fails on supported platforms.
		panic(err)
	}

	b := strings.Builder{}
	b.Grow(length)
	for _, v := range bytes {
		b.WriteByte(Alphabet[int(v)%len(Alphabet)])
	}
	return b.String()
}

// IsValidCode reports whether code has the expected length and only
// contains characters from Alphabet. Input is not case-normalized here.
func IsValidCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
