package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finetype/finetype/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show finetype version information",
	Long:  `Display version, build time, commit hash, and platform information for the finetype binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()

		if jsonOutput {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error formatting JSON: %v\n", err)
				return
			}
			fmt.Println(string(out))
			return
		}
		fmt.Println(info.String())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
	},
}
