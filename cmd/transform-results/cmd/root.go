package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath    string
	outputRoot    string
	manifestPath  string
	workspaceDir  string
	inputArtifact string
	verbose       bool
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "transform-results",
	Short: "Record and read transformation result manifests",
	Long: `transform-results records, for one execution of a build-time transformation,
the ordered set of output locations it produced or referenced, and reads that
record back so a cache can hand out the same outputs without re-running the
transformation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("transform-results %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "transform-results.yaml", "path to config file (optional)")
	rootCmd.PersistentFlags().StringVar(&outputRoot, "output-root", "", "directory holding the transformation outputs")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "path to the result manifest")
	rootCmd.PersistentFlags().StringVar(&workspaceDir, "workspace", "", "workspace directory (sets output root and manifest; default: <cache dir>/transform-results/default)")
	rootCmd.PersistentFlags().StringVar(&inputArtifact, "input-artifact", "", "input artifact that input elements resolve against")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
