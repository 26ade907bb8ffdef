package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/classifier"
	"github.com/finetype/finetype/internal/postprocess"
)

var inferTopK int

var inferCmd = &cobra.Command{
	Use:   "infer VALUE",
	Short: "Classify a single string value against the taxonomy",
	Long: `infer runs one value through the tokenizer, the CharCNN classifier,
and the post-processing rule stack, printing the winning label and its
confidence, plus (with --top-k) the runner-up candidates the rule
stack considered before rewriting.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfer,
}

func init() {
	inferCmd.Flags().IntVar(&inferTopK, "top-k", 1, "number of ranked candidates to print")
}

func runInfer(cmd *cobra.Command, args []string) error {
	value := args[0]

	tax, err := loadTaxonomy(cmd)
	if err != nil {
		printDiagnostic(err)
		return err
	}
	c, err := loadClassifier(cmd, tax)
	if err != nil {
		printDiagnostic(err)
		return err
	}

	k := inferTopK
	if k < 1 {
		k = 1
	}
	predictions := c.TopK(value, k)
	final := postprocess.Apply(value, predictions)

	if jsonOutput {
		return printInferJSON(value, final, predictions)
	}

	fmt.Println(final)
	if inferTopK > 1 {
		for _, p := range predictions {
			fmt.Printf("  %-40s %.4f\n", p.Label, p.Confidence)
		}
	}
	return nil
}

func printInferJSON(value, label string, predictions []classifier.Prediction) error {
	type candidate struct {
		Label      string  `json:"label"`
		Confidence float32 `json:"confidence"`
	}
	out := struct {
		Value      string      `json:"value"`
		Label      string      `json:"label"`
		Confidence float32     `json:"confidence"`
		Candidates []candidate `json:"candidates"`
	}{
		Value: value,
		Label: label,
	}
	if len(predictions) > 0 {
		out.Confidence = predictions[0].Confidence
	}
	for _, p := range predictions {
		out.Candidates = append(out.Candidates, candidate{Label: p.Label, Confidence: p.Confidence})
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}
