// Package column classifies a whole column of string values by
// sampling, running each sample through the classifier and
// post-processor, taking a majority vote, then applying a fixed stack
// of column-level disambiguation rules that see patterns invisible at
// the single-value level (a run of sequential integers, a coordinate
// range split across two candidate labels, a column of bare years).
package column

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/finetype/finetype/internal/classifier"
	"github.com/finetype/finetype/internal/postprocess"
)

// DefaultSampleSize bounds how many non-null values are drawn from
// the front of a column before classification, keeping the cost of
// profiling a large column constant.
const DefaultSampleSize = 100

// DefaultMinAgreement is the min-agreement value Classify uses when it
// is given a non-positive one. Classify accepts the value, but neither
// the reported label nor its confidence depends on it: the plurality
// winner is always reported at its observed vote share.
const DefaultMinAgreement = 0.5

const emptyColumnLabel = "representation.text.plain_text"

// Result is the outcome of classifying one column.
//
// DisambiguationApplied names the column-level rule that decided the
// final label, or "" when the plurality vote stood unchanged (the Go
// rendering of spec's `Option<rule_name>`).
type Result struct {
	RunID                 string
	Label                 string
	Confidence            float64
	SampleSize            int
	NonNull               int
	NullCount             int
	VoteCounts            map[string]int
	DisambiguationApplied string
}

// Classify samples up to sampleSize non-null values from values (in
// order, from the front), classifies each, and returns the
// majority-vote label after the column-level disambiguation stack has
// run. An all-null or empty column reports emptyColumnLabel at zero
// confidence.
func Classify(c *classifier.Classifier, values []string, sampleSize int, minAgreement float64) Result {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	if minAgreement <= 0 {
		minAgreement = DefaultMinAgreement
	}

	nonNull := make([]string, 0, len(values))
	nullCount := 0
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			nullCount++
			continue
		}
		nonNull = append(nonNull, v)
		if len(nonNull) >= sampleSize {
			break
		}
	}

	runID := uuid.New().String()

	if len(nonNull) == 0 {
		return Result{
			RunID:      runID,
			Label:      emptyColumnLabel,
			Confidence: 0,
			SampleSize: 0,
			NonNull:    0,
			NullCount:  nullCount,
			VoteCounts: map[string]int{},
		}
	}

	votes := make(map[string]int, 8)
	for _, v := range nonNull {
		preds := c.Classify(v)
		label := postprocess.Apply(v, preds)
		votes[label]++
	}

	label, count := plurality(votes)
	confidence := float64(count) / float64(len(nonNull))

	resolved, ruleName := applyDisambiguation(label, nonNull, votes)
	label = resolved
	if v, ok := votes[label]; ok {
		confidence = float64(v) / float64(len(nonNull))
	}

	// Below minAgreement, the plurality label is still reported, just
	// at its actual (lower) observed confidence rather than a
	// synthetic cutoff value.

	return Result{
		RunID:                 runID,
		Label:                 label,
		Confidence:            confidence,
		SampleSize:            len(nonNull),
		NonNull:               len(nonNull),
		NullCount:             nullCount,
		VoteCounts:            votes,
		DisambiguationApplied: ruleName,
	}
}

func plurality(votes map[string]int) (string, int) {
	var bestLabel string
	var bestCount int
	labels := make([]string, 0, len(votes))
	for l := range votes {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		if votes[l] > bestCount {
			bestLabel = l
			bestCount = votes[l]
		}
	}
	return bestLabel, bestCount
}

