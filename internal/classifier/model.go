// Package classifier implements the character-level convolutional
// network used to assign a taxonomy label to a single string value:
// an embedding lookup, four parallel 1D convolutions (kernel widths
// 2, 3, 4, 5; 64 filters each), global max-pooling per kernel,
// concatenation, then two fully-connected layers into a softmax over
// the taxonomy's label space.
package classifier

import (
	"math/rand"
	"sort"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/logger"
	"github.com/finetype/finetype/internal/tokenizer"
)

// Config carries the architecture hyperparameters fixed by the
// taxonomy's label count, kept separate from the trained weights so
// NewRandomArtifact and a real training pipeline can share it.
type Config struct {
	EmbedDim    int
	MaxLen      int
	KernelSizes []int
	NumFilters  int
	HiddenDim   int
}

// DefaultConfig matches the architecture named in the type
// classification design: 32-dim embeddings, kernels {2,3,4,5} at 64
// filters each, a 128-unit hidden layer, sequences truncated/padded
// to 64 characters.
func DefaultConfig() Config {
	return Config{
		EmbedDim:    32,
		MaxLen:      64,
		KernelSizes: []int{2, 3, 4, 5},
		NumFilters:  64,
		HiddenDim:   128,
	}
}

// Classifier wraps a loaded Artifact with the tokenizer settings it
// was trained under.
type Classifier struct {
	artifact *Artifact
}

// Load builds a Classifier from a trained artifact on disk.
func Load(path string) (*Classifier, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return &Classifier{artifact: a}, nil
}

// New wraps an already-constructed Artifact, e.g. one produced by
// NewRandomArtifact for a from-scratch run.
func New(a *Artifact) *Classifier {
	return &Classifier{artifact: a}
}

// Prediction is one entry of a ranked classification result.
type Prediction struct {
	Label      string
	Confidence float32
}

// Classify tokenizes value and returns the full ranked prediction
// list across every label the artifact was built for, highest
// confidence first.
func (c *Classifier) Classify(value string) []Prediction {
	tokenIDs := tokenizer.Encode(value, c.artifact.MaxLen)
	probs := forwardPass(c.artifact, tokenIDs)

	out := make([]Prediction, len(probs))
	for i, p := range probs {
		label := ""
		if i < len(c.artifact.Labels) {
			label = c.artifact.Labels[i]
		}
		out[i] = Prediction{Label: label, Confidence: p}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// ClassifyBatch runs Classify over every value in values.
func (c *Classifier) ClassifyBatch(values []string) [][]Prediction {
	out := make([][]Prediction, len(values))
	for i, v := range values {
		out[i] = c.Classify(v)
	}
	return out
}

// TopK returns at most k predictions from Classify(value), already
// sorted highest-confidence first.
func (c *Classifier) TopK(value string, k int) []Prediction {
	all := c.Classify(value)
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

// Labels returns the label set this classifier was built for, in
// class-index order.
func (c *Classifier) Labels() []string { return c.artifact.Labels }

// NewRandomArtifact builds an Artifact with Xavier/Glorot-uniform
// initialized weights for labels, at cfg's architecture. This is the
// artifact a fresh `finetype infer` run gets when no --artifact path
// names a trained gob file: every code path through the CharCNN
// forward pass is exercised, but the resulting classifications are
// not meaningful until real training data replaces these weights.
func NewRandomArtifact(labels []string, cfg Config, seed int64) (*Artifact, error) {
	if len(labels) == 0 {
		return nil, errors.Newf("cannot build a classifier artifact from zero labels")
	}
	rng := rand.New(rand.NewSource(seed))

	a := &Artifact{
		FormatVersion: artifactFormatVersion,
		VocabSize:     tokenizer.VocabSize,
		EmbedDim:      cfg.EmbedDim,
		MaxLen:        cfg.MaxLen,
		KernelSizes:   append([]int(nil), cfg.KernelSizes...),
		NumFilters:    cfg.NumFilters,
		HiddenDim:     cfg.HiddenDim,
		Labels:        append([]string(nil), labels...),
	}

	a.Embedding = xavierMatrix(rng, tokenizer.VocabSize, cfg.EmbedDim)

	a.ConvWeight = make([][][]float32, len(cfg.KernelSizes))
	a.ConvBias = make([][]float32, len(cfg.KernelSizes))
	for k, kernelSize := range cfg.KernelSizes {
		a.ConvWeight[k] = xavierMatrix(rng, cfg.NumFilters, kernelSize*cfg.EmbedDim)
		a.ConvBias[k] = make([]float32, cfg.NumFilters)
	}

	concatDim := len(cfg.KernelSizes) * cfg.NumFilters
	a.FC1Weight = xavierMatrix(rng, cfg.HiddenDim, concatDim)
	a.FC1Bias = make([]float32, cfg.HiddenDim)

	a.FC2Weight = xavierMatrix(rng, len(labels), cfg.HiddenDim)
	a.FC2Bias = make([]float32, len(labels))

	logger.Logger.Debugw("initialized random classifier artifact",
		logger.FieldCount, len(labels))

	return a, nil
}

func xavierMatrix(rng *rand.Rand, rows, cols int) [][]float32 {
	limit := float32(1.0)
	if rows+cols > 0 {
		limit = xavierLimit(rows, cols)
	}
	out := make([][]float32, rows)
	for i := range out {
		row := make([]float32, cols)
		for j := range row {
			row[j] = (rng.Float32()*2 - 1) * limit
		}
		out[i] = row
	}
	return out
}

func xavierLimit(fanIn, fanOut int) float32 {
	// sqrt(6 / (fanIn + fanOut)), the standard Glorot-uniform bound.
	n := float32(fanIn + fanOut)
	return sqrtf32(6 / n)
}
