package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bianoble/transform-results/internal/result"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record element...",
	Short: "Write a result manifest from an ordered list of elements",
	Long: `Builds a transformation result from the given elements, in order, and writes
it to the manifest, replacing any previous content. Elements are:

  input              the whole input artifact
  input:<path>       a relative path inside the input artifact
  output:<location>  a file or directory under the output root

Output locations that are not absolute are taken relative to the output root.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		b := result.NewBuilder(s.OutputRoot)
		for _, arg := range args {
			if err := addElement(b, s.OutputRoot, arg); err != nil {
				return fmt.Errorf("element '%s': %w", arg, err)
			}
		}
		r, err := b.Build()
		if err != nil {
			return err
		}

		if err := newSerializer(s).WriteFile(s.Manifest, r); err != nil {
			return err
		}

		info("Recorded %d element(s) to %s", r.Len(), s.Manifest)
		return nil
	},
}

// addElement parses one element argument and appends it to b.
func addElement(b *result.Builder, root, arg string) error {
	kind, value, hasValue := strings.Cut(arg, ":")
	switch kind {
	case "input":
		if !hasValue {
			return b.AddInputArtifact()
		}
		return b.AddInputArtifactPath(value)
	case "output":
		if !hasValue {
			return b.AddOutput(root)
		}
		loc := filepath.FromSlash(value)
		if !filepath.IsAbs(loc) {
			loc = filepath.Join(root, loc)
		}
		return b.AddOutput(loc)
	default:
		return fmt.Errorf("unknown element kind '%s' — must be one of: input, output", kind)
	}
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
