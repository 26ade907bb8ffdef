package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finetype/finetype/internal/config"
	"github.com/finetype/finetype/internal/logger"
)

var (
	globalViper  *viper.Viper
	globalConfig *config.Config
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "finetype",
	Short: "finetype - precision format detection for string-valued data",
	Long: `finetype classifies string values and table columns against a closed
taxonomy of semantic types (dates, identifiers, geographic values,
representations of numbers and text) using a character-level
classifier, a synthetic sample generator, and a post-processing rule
stack that resolves the ambiguities a classifier alone cannot.

Available commands:
  infer     - Classify a single string value
  profile   - Classify every column of a delimited file
  generate  - Emit synthetic labeled samples for one or more taxonomy keys
  validate  - Validate a column's values against a named taxonomy type's schema
  check     - Verify the taxonomy and generator registries are consistent

Examples:
  finetype infer "2024-01-15T10:30:00Z"
  finetype profile data.csv
  finetype generate identity.person.email --count 5
  finetype validate data.csv --column zip --type geography.address.postal_code
  finetype check`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		globalViper = config.New()
		cfg, err := config.Load(globalViper)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		globalConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit structured JSON logs and output")
	rootCmd.PersistentFlags().String("artifact", "", "path to a trained classifier artifact (gob); a freshly initialized artifact is used when omitted")
	rootCmd.PersistentFlags().String("taxonomy", "", "path to a taxonomy directory or file; the bundled taxonomy is used when omitted")

	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
