// Package ident issues identity tokens for values that need to be told apart
// regardless of their field contents.
package ident

import "sync/atomic"

// Token is a globally unique identity. The zero Token is never issued.
type Token uint64

var counter atomic.Uint64

// Next returns a fresh token
func Next() Token {
	return Token(counter.Add(1))
}

// IsZero reports whether the token was never assigned
func (t Token) IsZero() bool {
	return t == 0
}

// Hash returns a FNV-1a 64-bit hash of the token's bytes
func (t Token) Hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a 64-bit offset basis
	const prime uint64 = 1099511628211  // FNV-1a 64-bit prime

	v := uint64(t)
	for i := 0; i < 8; i++ {
		h ^= v & 0xFF
		h *= prime
		v >>= 8
	}

	return h
}
