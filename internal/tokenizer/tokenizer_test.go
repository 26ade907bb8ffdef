package tokenizer_test

import (
	"testing"

	"github.com/finetype/finetype/internal/tokenizer"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDeterministic(t *testing.T) {
	a := tokenizer.Encode("hello@example.com", 32)
	b := tokenizer.Encode("hello@example.com", 32)
	assert.Equal(t, a, b)
}

func TestEncodePadsRight(t *testing.T) {
	ids := tokenizer.Encode("ab", 5)
	assert.Len(t, ids, 5)
	assert.NotEqual(t, 0, ids[0])
	assert.NotEqual(t, 0, ids[1])
	assert.Equal(t, 0, ids[2])
	assert.Equal(t, 0, ids[3])
	assert.Equal(t, 0, ids[4])
}

func TestEncodeTruncatesRight(t *testing.T) {
	ids := tokenizer.Encode("abcdef", 3)
	assert.Len(t, ids, 3)
}

func TestEncodeOutOfVocabMapsToZero(t *testing.T) {
	ids := tokenizer.Encode("中", 1)
	assert.Equal(t, []int{0}, ids)
}

func TestEncodeKnownCharsNonzero(t *testing.T) {
	ids := tokenizer.Encode("a", 1)
	assert.NotEqual(t, 0, ids[0])
}

func TestEncodeBatchPreservesOrder(t *testing.T) {
	in := []string{"a", "bb", "ccc"}
	out := tokenizer.EncodeBatch(in, 4)
	assert.Len(t, out, 3)
	for i, s := range in {
		assert.Equal(t, tokenizer.Encode(s, 4), out[i])
	}
}
