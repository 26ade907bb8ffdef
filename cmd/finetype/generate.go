package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/generator"
	"github.com/finetype/finetype/internal/logger"
	"github.com/finetype/finetype/internal/taxonomy"
)

var (
	generateCount  int
	generateLocale string
	generateSeed   int64
	generateWatch  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate KEY [KEY...]",
	Short: "Emit synthetic labeled samples for one or more taxonomy keys",
	Long: `generate produces checksum-correct, locale-aware synthetic samples for
the given taxonomy keys, the same generator arms internal/checker uses
to verify every key's schema is satisfiable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "samples to produce per key")
	generateCmd.Flags().StringVar(&generateLocale, "locale", "", "locale to generate under (locale_specific keys only)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "PRNG seed (0 = non-deterministic)")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "reload the taxonomy directory on change and regenerate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy(cmd)
	if err != nil {
		printDiagnostic(err)
		return err
	}

	if generateWatch {
		taxPath, _ := cmd.Flags().GetString("taxonomy")
		if taxPath == "" {
			diagErr := errors.Newf("--watch requires --taxonomy to name a directory")
			printDiagnostic(diagErr)
			return diagErr
		}
		return runGenerateWatch(taxPath, tax, args)
	}

	return generateOnce(tax, args)
}

func generateOnce(tax *taxonomy.Taxonomy, keys []string) error {
	var gen *generator.Generator
	if generateSeed != 0 {
		gen = generator.NewSeeded(tax, generateSeed)
	} else {
		gen = generator.New(tax)
	}

	allSamples := make(map[string][]generator.Sample, len(keys))
	for _, key := range keys {
		var samples []generator.Sample
		var err error
		if generateLocale != "" {
			samples, err = gen.GenerateLocalized(key, generateLocale, generateCount)
		} else {
			samples, err = gen.Generate(key, generateCount)
		}
		if err != nil {
			printDiagnostic(err)
			return err
		}
		allSamples[key] = samples
	}

	if jsonOutput {
		enc, err := json.MarshalIndent(allSamples, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	}

	for _, key := range keys {
		for _, s := range allSamples[key] {
			fmt.Printf("%s\t%s\n", s.Label, s.Text)
		}
	}
	return nil
}

// runGenerateWatch regenerates keys against tax (loaded from taxPath) once, then
// re-runs on every taxonomy directory change until interrupted.
func runGenerateWatch(taxPath string, tax *taxonomy.Taxonomy, keys []string) error {
	if err := generateOnce(tax, keys); err != nil {
		return err
	}

	w, err := taxonomy.NewWatcher(taxPath)
	if err != nil {
		printDiagnostic(err)
		return err
	}
	w.OnReload(func(reloaded *taxonomy.Taxonomy) error {
		logger.Logger.Infow("taxonomy changed, regenerating", logger.FieldPath, taxPath)
		return generateOnce(reloaded, keys)
	})
	w.Start()
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}
