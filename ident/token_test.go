package ident_test

import (
	"sync"
	"testing"

	"github.com/plus3/spritecore/ident"
	"github.com/stretchr/testify/assert"
)

func TestNextIsUnique(t *testing.T) {
	seen := make(map[ident.Token]bool)
	for i := 0; i < 1000; i++ {
		tok := ident.Next()
		assert.False(t, tok.IsZero())
		assert.False(t, seen[tok], "token %d issued twice", tok)
		seen[tok] = true
	}
}

func TestNextConcurrent(t *testing.T) {
	const workers = 8
	const perWorker = 500

	results := make([][]ident.Token, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], ident.Next())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[ident.Token]bool, workers*perWorker)
	for _, tokens := range results {
		for _, tok := range tokens {
			assert.False(t, seen[tok])
			seen[tok] = true
		}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestHash(t *testing.T) {
	var zero ident.Token
	assert.True(t, zero.IsZero())

	// FNV-1a over eight zero bytes
	assert.Equal(t, uint64(0xa8c7f832281a39c5), zero.Hash())

	a := ident.Next()
	b := ident.Next()
	assert.Equal(t, a.Hash(), a.Hash())
	assert.NotEqual(t, a.Hash(), b.Hash())
}
