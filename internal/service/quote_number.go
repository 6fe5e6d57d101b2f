package service

import (
	"crypto/rand"
	"fmt"
)

const (
	// QuoteNumberLength is the number of characters in a quote number.
	QuoteNumberLength = 10
	quoteAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// QuoteNumberFunc generates candidate quote numbers.
type QuoteNumberFunc func() (string, error)

// NewQuoteNumber returns QuoteNumberLength characters drawn uniformly from A-Z and 0-9.
func NewQuoteNumber() (string, error) {
	// Bytes at or above maxByte are rejected so every symbol is equally likely.
	const maxByte = 256 - 256%len(quoteAlphabet)

	out := make([]byte, 0, QuoteNumberLength)
	buf := make([]byte, QuoteNumberLength*2)
	for len(out) < QuoteNumberLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("service: failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, quoteAlphabet[int(b)%len(quoteAlphabet)])
			if len(out) == QuoteNumberLength {
				break
			}
		}
	}
	return string(out), nil
}

// IsQuoteNumber reports whether s has the shape of a quote number.
func IsQuoteNumber(s string) bool {
	if len(s) != QuoteNumberLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
