package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "shearcheck",
	Short: "Seismic Shear Verification for RC Lateral Members",
	Long: `shearcheck - Seismic Shear Verification Tool

A CLI tool for verifying the shear strength of reinforced concrete
lateral members (structural walls, wall piers, columns, coupling beams)
under the capacity design provisions of NSCP 2015 Section 418.

This tool helps structural engineers perform:
  - Geometry-based element classification (wall, pier, column)
  - Capacity-design shear demand from probable end moments
  - Table-driven demand amplification for non-capacity-designed walls
  - Concrete and steel shear contributions with code ceilings
  - Biaxial demand/capacity combination
  - Connected wall group capacity aggregation

All calculations follow NSCP 2015 (Volume 1) provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   shearcheck v%-44s║\n", version.Version)
		fmt.Println("  ║   Seismic Shear Verification for RC Lateral Members       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for capacity-design shear verification of concrete")
		fmt.Println("  walls, wall piers and columns based on NSCP 2015 Section 418.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Element classification with wall-pier override rules")
		fmt.Println("    • Capacity-design demand from flexural overstrength")
		fmt.Println("    • Single-member and batch verification with biaxial DCR")
		fmt.Println("    • Connected wall group capacity checks")
		fmt.Println()
		fmt.Println("  Use 'shearcheck --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
