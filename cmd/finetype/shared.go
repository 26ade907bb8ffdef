package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/classifier"
	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/taxonomy"
)

// loadTaxonomy resolves the --taxonomy flag (falling back to
// globalConfig, falling back to the bundled default) into a Taxonomy.
func loadTaxonomy(cmd *cobra.Command) (*taxonomy.Taxonomy, error) {
	path, _ := cmd.Flags().GetString("taxonomy")
	if path == "" && globalConfig != nil {
		path = globalConfig.Taxonomy.Path
	}
	if path == "" {
		return taxonomy.LoadEmbedded()
	}
	return taxonomy.Load(path)
}

// loadClassifier resolves the --artifact flag into a Classifier,
// falling back to a freshly Xavier-initialized artifact over tax's
// label set when no trained artifact path is given.
func loadClassifier(cmd *cobra.Command, tax *taxonomy.Taxonomy) (*classifier.Classifier, error) {
	path, _ := cmd.Flags().GetString("artifact")
	if path == "" && globalConfig != nil {
		path = globalConfig.Model.ArtifactPath
	}
	if path != "" {
		return classifier.Load(path)
	}

	seed := int64(1)
	if globalConfig != nil {
		seed = globalConfig.Model.Seed
	}
	a, err := classifier.NewRandomArtifact(tax.Labels(), classifier.DefaultConfig(), seed)
	if err != nil {
		return nil, errors.At(errors.KindModel, "random-artifact", err)
	}
	return classifier.New(a), nil
}

// printDiagnostic writes a single diagnostic line for a fatal error:
// kind, offending location, description, when err carries a Kind.
func printDiagnostic(err error) {
	if _, ok := errors.KindOf(err); ok {
		fmt.Println(err)
		return
	}
	fmt.Println("error:", err)
}
