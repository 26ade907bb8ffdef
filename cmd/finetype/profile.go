package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/column"
	"github.com/finetype/finetype/internal/errors"
)

var (
	profileSampleSize   int
	profileMinAgreement float64
)

var profileCmd = &cobra.Command{
	Use:   "profile FILE.csv",
	Short: "Classify every column of a delimited file",
	Long: `profile reads a CSV file, samples the first N non-null values of each
column, classifies them, applies the column-level disambiguation
stack, and prints one inferred type and confidence per column.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().IntVar(&profileSampleSize, "sample-size", 0, "non-null values sampled per column (0 = use configured default)")
	profileCmd.Flags().Float64Var(&profileMinAgreement, "min-agreement", 0, "minimum vote agreement fraction (0 = use configured default)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		diagErr := errors.At(errors.KindIo, path, err)
		printDiagnostic(diagErr)
		return diagErr
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		diagErr := errors.At(errors.KindParse, path, err)
		printDiagnostic(diagErr)
		return diagErr
	}
	if len(rows) == 0 {
		diagErr := errors.Atf(errors.KindSchema, path, "file has no rows")
		printDiagnostic(diagErr)
		return diagErr
	}

	header := rows[0]
	columns := make([][]string, len(header))
	for _, row := range rows[1:] {
		for i := range header {
			if i < len(row) {
				columns[i] = append(columns[i], row[i])
			} else {
				columns[i] = append(columns[i], "")
			}
		}
	}

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

	sampleSize := profileSampleSize
	if sampleSize == 0 && globalConfig != nil {
		sampleSize = globalConfig.Column.SampleSize
	}
	minAgreement := profileMinAgreement
	if minAgreement == 0 && globalConfig != nil {
		minAgreement = globalConfig.Column.MinAgreement
	}

	results := make(map[string]column.Result, len(header))
	for i, name := range header {
		results[name] = column.Classify(c, columns[i], sampleSize, minAgreement)
	}

	if jsonOutput {
		enc, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	}

	tableData := pterm.TableData{{"Column", "Label", "Confidence", "Sampled", "Nulls", "Disambiguation"}}
	for _, name := range header {
		r := results[name]
		disambiguation := r.DisambiguationApplied
		if disambiguation == "" {
			disambiguation = "-"
		}
		tableData = append(tableData, []string{
			name, r.Label, fmt.Sprintf("%.2f", r.Confidence),
			fmt.Sprintf("%d", r.SampleSize), fmt.Sprintf("%d", r.NullCount),
			disambiguation,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
