package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
)

var (
	classifyLength    float64
	classifyThickness float64
	classifyHeight    float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a lateral member from its geometry",
	Long: `Determine the code category of a lateral member (column, wall,
wall pier or squat wall) from its geometry ratios.

The classification follows NSCP 2015 provisions:
  - Section 418.7.2.1: Minimum column cross-section aspect ratio
  - Section 418.10.8:  Wall pier provisions

A column-shaped section (lw/t < 4) that fails the minimum aspect ratio
is reclassified as a wall segment, with the override reason reported.

Examples:
  # A 600x300mm column, 3m clear height
  shearcheck classify --length 600 --thickness 300 --height 3000

  # A narrow wall pier
  shearcheck classify -l 800 -t 250 -H 3000`,
	Run: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64VarP(&classifyLength, "length", "l", 0, "Section length along analysis direction lw (mm) [required]")
	classifyCmd.Flags().Float64VarP(&classifyThickness, "thickness", "t", 0, "Section thickness t (mm) [required]")
	classifyCmd.Flags().Float64VarP(&classifyHeight, "height", "H", 0, "Clear height hw (mm) [required]")

	classifyCmd.MarkFlagRequired("length")
	classifyCmd.MarkFlagRequired("thickness")
	classifyCmd.MarkFlagRequired("height")
}

func runClassify(cmd *cobra.Command, args []string) {
	class := member.Classify(classifyLength, classifyThickness, classifyHeight)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LATERAL MEMBER CLASSIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (lw):\t%.0f mm\n", classifyLength)
	fmt.Fprintf(w, "  Thickness (t):\t%.0f mm\n", classifyThickness)
	fmt.Fprintf(w, "  Clear Height (hw):\t%.0f mm\n", classifyHeight)
	w.Flush()
	fmt.Println()

	fmt.Println("GOVERNING RATIOS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  lw/t:\t%.3f\n", class.LwOverT)
	fmt.Fprintf(w, "  hw/lw:\t%.3f\n", class.HwOverLw)
	fmt.Fprintf(w, "  short/long aspect:\t%.3f\n", class.ShortLong)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  CATEGORY: %-29s║\n", class.Category)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	fmt.Printf("  Formula family: %s\n", class.Family)

	if class.InvalidGeometry {
		fmt.Println()
		fmt.Println("  WARNING: invalid geometry (non-positive dimension);")
		fmt.Println("  the most conservative category (WALL) was assumed.")
	}
	if class.Overridden {
		fmt.Println()
		fmt.Println("  OVERRIDE APPLIED:")
		fmt.Printf("  %s\n", class.OverrideReason)
	}
	fmt.Println()
}
