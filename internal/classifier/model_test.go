package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLabels() []string {
	return []string{"datetime.date.iso", "identity.person.email", "representation.text.plain_text"}
}

func TestClassifyReturnsOnePredictionPerLabel(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 1)
	require.NoError(t, err)
	c := New(a)

	preds := c.Classify("2024-01-15")
	assert.Len(t, preds, len(testLabels()))
}

func TestClassifyOrdersByDescendingConfidence(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 2)
	require.NoError(t, err)
	c := New(a)

	preds := c.Classify("someone@example.com")
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Confidence, preds[i].Confidence)
	}
}

func TestConfidencesSumToApproximatelyOne(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 3)
	require.NoError(t, err)
	c := New(a)

	preds := c.Classify("hello world")
	var sum float32
	for _, p := range preds {
		sum += p.Confidence
	}
	assert.InDelta(t, 1.0, float64(sum), 1e-4)
}

func TestTopKRespectsLimit(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 4)
	require.NoError(t, err)
	c := New(a)

	top := c.TopK("test-value", 2)
	assert.Len(t, top, 2)
}

func TestTopKClampsToAvailableLabels(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 5)
	require.NoError(t, err)
	c := New(a)

	top := c.TopK("test-value", 100)
	assert.Len(t, top, len(testLabels()))
}

func TestClassifyBatchPreservesOrder(t *testing.T) {
	a, err := NewRandomArtifact(testLabels(), DefaultConfig(), 6)
	require.NoError(t, err)
	c := New(a)

	values := []string{"a", "bb", "ccc"}
	results := c.ClassifyBatch(values)
	require.Len(t, results, len(values))
	for i, r := range results {
		assert.Len(t, r, len(testLabels()))
		assert.Equal(t, c.Classify(values[i]), r)
	}
}

func TestNewRandomArtifactRejectsEmptyLabels(t *testing.T) {
	_, err := NewRandomArtifact(nil, DefaultConfig(), 1)
	assert.Error(t, err)
}

func TestNewRandomArtifactIsDeterministicForSameSeed(t *testing.T) {
	a1, err := NewRandomArtifact(testLabels(), DefaultConfig(), 99)
	require.NoError(t, err)
	a2, err := NewRandomArtifact(testLabels(), DefaultConfig(), 99)
	require.NoError(t, err)

	c1 := New(a1)
	c2 := New(a2)
	p1 := c1.Classify("repeatable")
	p2 := c2.Classify("repeatable")
	for i := range p1 {
		assert.Equal(t, p1[i].Label, p2[i].Label)
		assert.InDelta(t, p1[i].Confidence, p2[i].Confidence, 1e-6)
	}
}
