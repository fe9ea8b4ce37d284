package cmd

import (
	"fmt"

	"github.com/bianoble/transform-results/internal/workspace"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the effective configuration",
	Long: `Displays the transform-results version, the config file, the resolved output
root and manifest paths, and the default workspace parent directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("transform-results %s\n", version)
		fmt.Printf("  config:         %s\n", configPath)
		fmt.Printf("  workspace home: %s\n", workspace.DefaultDir())

		s, err := loadSettings()
		if err != nil {
			fmt.Printf("  settings:       %v\n", err)
			return nil
		}
		fmt.Printf("  output root:    %s\n", s.OutputRoot)
		fmt.Printf("  manifest:       %s\n", s.Manifest)
		if s.InputArtifact != "" {
			fmt.Printf("  input artifact: %s\n", s.InputArtifact)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
