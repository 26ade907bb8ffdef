package checker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Render prints a human-readable summary of r using pterm, the same
// terminal rendering library the CLI uses for profile/check output.
func Render(r Report) {
	if r.OK() {
		pterm.Success.Printfln("taxonomy and generator registries are consistent across %d keys", r.TotalKeys)
		return
	}

	pterm.Warning.Printfln("%d of %d keys failed consistency checks", len(r.Failures), r.TotalKeys)

	tableData := pterm.TableData{{"Key", "Kind", "Domain", "Detail"}}
	for _, f := range r.Failures {
		tableData = append(tableData, []string{f.Key, string(f.Kind), f.Domain, f.Detail})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		fmt.Println("failed to render report table:", err)
	}

	for domain, failures := range r.ByDomain() {
		pterm.Info.Printfln("%s: %d failure(s)", domain, len(failures))
	}
}
