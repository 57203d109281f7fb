package cmd

import (
	"github.com/spf13/cobra"
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shear strength verification of lateral members",
	Long: `Verify the shear strength of reinforced concrete lateral members
under the seismic provisions of NSCP 2015 Section 418.

Subcommands:
  verify  - Verify a single member from command-line flags
  batch   - Verify a batch of members defined in a JSON file

Demand routing follows capacity design: members with probable
overstrength end moments derive their demand from flexure; other wall
segments route through the table-driven amplification factors.`,
}

func init() {
	rootCmd.AddCommand(shearCmd)
}
