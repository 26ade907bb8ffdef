package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/checker"
	"github.com/finetype/finetype/internal/version"
)

var checkMinPriority int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the taxonomy and generator registries are consistent",
	Long: `check confirms that every taxonomy key has a matching generator arm
and vice versa, then generates samples for every key with a schema
and validates each against its own definition, reporting a single
pass/fail table grouped by domain.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkMinPriority, "min-priority", 0, "only report failures at or above this release_priority")
}

func runCheck(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy(cmd)
	if err != nil {
		printDiagnostic(err)
		return err
	}

	report := checker.Check(tax)
	failures := report.Failures
	if checkMinPriority > 0 {
		failures = report.AtPriority(tax, checkMinPriority)
	}
	filtered := checker.Report{RunID: report.RunID, TotalKeys: report.TotalKeys, Failures: failures}

	if jsonOutput {
		enc, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		if !filtered.OK() {
			return fmt.Errorf("%d consistency failure(s)", len(filtered.Failures))
		}
		return nil
	}

	fmt.Printf("finetype %s — taxonomy/generator consistency check\n", version.Get().Short())
	checker.Render(filtered)
	if !filtered.OK() {
		return fmt.Errorf("%d consistency failure(s)", len(filtered.Failures))
	}
	return nil
}
