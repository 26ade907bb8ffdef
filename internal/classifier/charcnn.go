package classifier

import "math"

func expf32(x float32) float32 { return float32(math.Exp(float64(x))) }

func sqrtf32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// forwardPass runs the CharCNN architecture over one already-tokenized
// input: an embedding lookup, parallel 1D convolutions (one per kernel
// size) each followed by global max-pooling, concatenation across
// kernels, then FC(hidden)+ReLU, then FC(numClasses)+softmax.
//
// No local-inference tensor runtime among this module's dependencies
// exposes this exact architecture (charCNN is not one of the
// operator graphs ONNX/TFLite ship pre-built kernels for at this
// filter/kernel-size combination), so the forward pass is hand-written
// float32 arithmetic over the artifact's own weight tensors.
func forwardPass(a *Artifact, tokenIDs []int) []float32 {
	embedded := embed(a, tokenIDs)

	pooled := make([]float32, 0, len(a.KernelSizes)*a.NumFilters)
	for k, kernelSize := range a.KernelSizes {
		conv := convolve1D(embedded, a.ConvWeight[k], a.ConvBias[k], kernelSize, a.EmbedDim, a.NumFilters)
		pooled = append(pooled, globalMaxPool(conv, a.NumFilters)...)
	}

	hidden := denseReLU(pooled, a.FC1Weight, a.FC1Bias)
	logits := dense(hidden, a.FC2Weight, a.FC2Bias)
	return softmax(logits)
}

// embed looks up each token's embedding row, flattened row-major as
// [seqLen][embedDim].
func embed(a *Artifact, tokenIDs []int) [][]float32 {
	out := make([][]float32, len(tokenIDs))
	for i, id := range tokenIDs {
		if id < 0 || id >= len(a.Embedding) {
			id = 0
		}
		out[i] = a.Embedding[id]
	}
	return out
}

// convolve1D applies numFilters 1D convolution kernels of width
// kernelSize over embedded, each kernel's weight vector flattened as
// kernelSize*embedDim. Returns [outputPositions][numFilters].
func convolve1D(embedded [][]float32, weight [][]float32, bias []float32, kernelSize, embedDim, numFilters int) [][]float32 {
	seqLen := len(embedded)
	outLen := seqLen - kernelSize + 1
	if outLen < 1 {
		outLen = 1
	}
	out := make([][]float32, outLen)
	for pos := 0; pos < outLen; pos++ {
		out[pos] = make([]float32, numFilters)
		for f := 0; f < numFilters; f++ {
			var sum float32
			w := weight[f]
			for k := 0; k < kernelSize; k++ {
				srcPos := pos + k
				if srcPos >= seqLen {
					continue
				}
				for d := 0; d < embedDim; d++ {
					sum += embedded[srcPos][d] * w[k*embedDim+d]
				}
			}
			out[pos][f] = sum + bias[f]
		}
	}
	return out
}

// globalMaxPool reduces [positions][numFilters] to [numFilters] by
// taking the max activation per filter across all positions, applying
// ReLU as it goes (negative maxima clamp to zero).
func globalMaxPool(conv [][]float32, numFilters int) []float32 {
	out := make([]float32, numFilters)
	for f := 0; f < numFilters; f++ {
		var max float32
		for pos := range conv {
			if v := conv[pos][f]; v > max {
				max = v
			}
		}
		out[f] = max
	}
	return out
}

func denseReLU(in []float32, weight [][]float32, bias []float32) []float32 {
	out := dense(in, weight, bias)
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		}
	}
	return out
}

func dense(in []float32, weight [][]float32, bias []float32) []float32 {
	out := make([]float32, len(weight))
	for i, row := range weight {
		var sum float32
		for j, v := range in {
			sum += v * row[j]
		}
		out[i] = sum + bias[i]
	}
	return out
}

func softmax(logits []float32) []float32 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	exp := make([]float32, len(logits))
	var sum float32
	for i, v := range logits {
		e := expf32(v - max)
		exp[i] = e
		sum += e
	}
	if sum == 0 {
		sum = 1
	}
	for i := range exp {
		exp[i] /= sum
	}
	return exp
}
