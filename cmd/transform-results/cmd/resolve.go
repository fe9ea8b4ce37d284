package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the concrete locations a result manifest stands for",
	Long: `Decodes the manifest and prints one absolute location per element, in order.
Input elements resolve against --input-artifact, which is required when the
manifest references the input artifact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		r, err := newSerializer(s).ReadFile(s.Manifest)
		if err != nil {
			return err
		}

		if s.InputArtifact == "" {
			for _, e := range r.Elements() {
				if e.Kind.IsInput() {
					return fmt.Errorf("manifest references the input artifact — pass --input-artifact")
				}
			}
		}

		locations, err := r.Resolve(s.InputArtifact)
		if err != nil {
			return err
		}
		for _, loc := range locations {
			fmt.Println(loc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
