package pairing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "DefaultLength", length: 4},
		{name: "LongCode", length: 12},
		{name: "Empty", length: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := Generate(tt.length)
			assert.Len(t, code, tt.length)
			for _, r := range code {
				assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected character %q", r)
			}
		})
	}
}

func TestGenerate_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[Generate(8)] = true
	}

	// 100 draws from 36^8 colliding down to a handful would mean the
	// source is not random at all.
	assert.Greater(t, len(seen), 90)
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		length   int
		expected bool
	}{
		{name: "Valid", code: "AB12", length: 4, expected: true},
		{name: "TooShort", code: "abc", length: 4, expected: false},
		{name: "TooLong", code: "ABCDE", length: 4, expected: false},
		{name: "Lowercase", code: "ab12", length: 4, expected: false},
		{name: "Symbols", code: "AB!2", length: 4, expected: false},
		{name: "Empty", code: "", length: 4, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCode(tt.code, tt.length))
		})
	}
}
