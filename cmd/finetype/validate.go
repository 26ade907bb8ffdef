package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/validator"
)

var (
	validateColumn   string
	validateType     string
	validateStrategy string
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE.csv",
	Short: "Validate a column's values against a taxonomy type's schema",
	Long: `validate checks every value in --column against the validation
fragment of the taxonomy definition named by --type, reporting every
violation (not just the first), then applies a repair --strategy
(quarantine, set_null, forward_fill, backward_fill).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateColumn, "column", "", "column name to validate (required)")
	validateCmd.Flags().StringVar(&validateType, "type", "", "taxonomy key whose schema to validate against (required)")
	validateCmd.Flags().StringVar(&validateStrategy, "strategy", string(validator.StrategyQuarantine), "repair strategy: quarantine, set_null, forward_fill, backward_fill")
	_ = validateCmd.MarkFlagRequired("column")
	_ = validateCmd.MarkFlagRequired("type")
}

func runValidate(cmd *cobra.Command, args []string) error {
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
	colIndex := -1
	for i, name := range header {
		if name == validateColumn {
			colIndex = i
			break
		}
	}
	if colIndex < 0 {
		diagErr := errors.Atf(errors.KindSchema, path, "no column named %q", validateColumn)
		printDiagnostic(diagErr)
		return diagErr
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if colIndex < len(row) {
			values = append(values, row[colIndex])
		} else {
			values = append(values, "")
		}
	}

	tax, err := loadTaxonomy(cmd)
	if err != nil {
		printDiagnostic(err)
		return err
	}
	def, ok := tax.Get(validateType)
	if !ok {
		diagErr := errors.Atf(errors.KindIntegrity, validateType, "unknown taxonomy key")
		printDiagnostic(diagErr)
		return diagErr
	}

	failures := validator.ValidateColumn(values, def)
	repaired, quarantined := validator.Apply(validator.Strategy(validateStrategy), values, def, failures)

	if jsonOutput {
		out := struct {
			Column      string             `json:"column"`
			Type        string             `json:"type"`
			Strategy    string             `json:"strategy"`
			Total       int                `json:"total"`
			Failures    int                `json:"failures"`
			Quarantined []int              `json:"quarantined"`
			Values      []string           `json:"repaired_values"`
		}{
			Column: validateColumn, Type: validateType, Strategy: validateStrategy,
			Total: len(values), Failures: len(failures), Quarantined: quarantined, Values: repaired,
		}
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	}

	if len(failures) == 0 {
		pterm.Success.Printfln("all %d values in %q validate against %s", len(values), validateColumn, validateType)
		return nil
	}

	pterm.Warning.Printfln("%d of %d values in %q failed validation against %s", len(failures), len(values), validateColumn, validateType)
	tableData := pterm.TableData{{"Row", "Value", "Rule", "Detail"}}
	for i := 0; i < len(values); i++ {
		for _, v := range failures[i] {
			tableData = append(tableData, []string{fmt.Sprintf("%d", i), v.Value, v.Rule, v.Detail})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("strategy %q left %d value(s) quarantined", validateStrategy, len(quarantined))
	return nil
}
