package cmd

import (
	"errors"
	"fmt"

	"github.com/bianoble/transform-results/internal/manifest"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that a result manifest can be read",
	Long: `Decodes the manifest without resolving it. Exit 0 if every line parses;
exit non-zero if the manifest is missing, unreadable, or corrupt. A failed
check means the cached result must be treated as a miss.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		r, err := newSerializer(s).ReadFile(s.Manifest)
		if err != nil {
			var perr *manifest.ParseError
			var ioErr *manifest.IOError
			switch {
			case errors.As(err, &perr):
				errorf("line %d: %q", perr.Line, perr.Text)
				return fmt.Errorf("check failed: manifest %s is corrupt", s.Manifest)
			case errors.As(err, &ioErr):
				return fmt.Errorf("check failed: %w", err)
			default:
				return err
			}
		}

		info("Manifest %s is valid (%d element(s)).", s.Manifest, r.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
