package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the elements of a result manifest",
	Long:  `Decodes the manifest and prints its elements in recorded order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		r, err := newSerializer(s).ReadFile(s.Manifest)
		if err != nil {
			return err
		}

		for i, e := range r.Elements() {
			info("%3d  %-16s %s", i+1, e.Kind, e.Path)
			if e.Kind.IsInput() {
				continue
			}
			loc, err := r.OutputLocation(e)
			if err != nil {
				return err
			}
			detail("     → %s", loc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
