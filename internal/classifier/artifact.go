package classifier

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"

	"github.com/finetype/finetype/internal/errors"
)

// artifactFormatVersion is the semantic version of the gob-encoded
// weight format this build writes and reads. A trained artifact whose
// FormatVersion is not satisfied by compatibleRange is rejected at
// load time rather than silently misinterpreted.
const artifactFormatVersion = "1.0.0"

// compatibleRange accepts any artifact within the same major version.
const compatibleRange = "^1.0.0"

// Artifact is the trained CharCNN's serialized weights plus the class
// index it was trained against, persisted with encoding/gob. No
// safetensors- or ONNX-compatible reader exists among the libraries
// this module draws on, so the artifact format is a plain Go type
// encoded with the standard library's own binary codec.
type Artifact struct {
	FormatVersion string
	VocabSize     int
	EmbedDim      int
	MaxLen        int
	KernelSizes   []int
	NumFilters    int
	HiddenDim     int
	Labels        []string

	Embedding  [][]float32   // [VocabSize][EmbedDim]
	ConvWeight [][][]float32 // per kernel: [NumFilters][kernelSize*EmbedDim]
	ConvBias   [][]float32   // per kernel: [NumFilters]
	FC1Weight  [][]float32   // [HiddenDim][len(KernelSizes)*NumFilters]
	FC1Bias    []float32     // [HiddenDim]
	FC2Weight  [][]float32   // [len(Labels)][HiddenDim]
	FC2Bias    []float32     // [len(Labels)]
}

// LoadArtifact reads a trained artifact from a gob file at path. There
// is no bundled default: a from-scratch initialized network never
// classifies correctly, so callers with no trained artifact must go
// through NewRandomArtifact and are expected to know they are running
// unconverged weights (see cmd/finetype's --artifact flag handling).
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.At(errors.KindIo, path, err)
	}
	defer f.Close()
	return decodeArtifact(path, f)
}

func decodeArtifact(location string, r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, errors.At(errors.KindModel, location, err)
	}
	if err := checkCompatibility(a.FormatVersion); err != nil {
		return nil, errors.At(errors.KindModel, location, err)
	}
	return &a, nil
}

// SaveArtifact writes a (training-produced) artifact to path in the
// same gob format LoadArtifact reads.
func SaveArtifact(path string, a *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.At(errors.KindIo, path, err)
	}
	defer f.Close()
	a.FormatVersion = artifactFormatVersion
	if err := gob.NewEncoder(f).Encode(a); err != nil {
		return errors.At(errors.KindIo, path, err)
	}
	return nil
}

func checkCompatibility(artifactVersion string) error {
	v, err := semver.NewVersion(artifactVersion)
	if err != nil {
		return errors.Newf("artifact format version %q is not valid semver: %w", artifactVersion, err)
	}
	c, err := semver.NewConstraint(compatibleRange)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return errors.Newf("artifact format version %s is incompatible with this build's %s", artifactVersion, compatibleRange)
	}
	return nil
}
