package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/diagram"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/shear"
)

var (
	amplifyShear       float64
	amplifyHwOverLw    float64
	amplifyBuildingH   float64
	amplifySystemOmega bool
	amplifyOmega0      float64
	amplifyShowProfile bool
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify",
	Short: "Calculate the demand amplification factors",
	Long: `Calculate the table-driven shear demand amplification for a wall
segment whose demand is not derived from flexural overstrength.

Two multipliers apply: a geometry factor Ωv interpolated from the hw/lw
ratio, and a building-height factor ωh active above the slender-wall
ratio. The alternative mode substitutes a single system overstrength
factor Ω0 for the product.

Examples:
  shearcheck amplify --shear 450 --ratio 1.6 --building-height 24
  shearcheck amplify --shear 450 --ratio 1.6 --system-overstrength --omega0 2.5`,
	Run: runAmplify,
}

func init() {
	rootCmd.AddCommand(amplifyCmd)

	amplifyCmd.Flags().Float64VarP(&amplifyShear, "shear", "v", 0, "Analysis shear Vu (kN) [required]")
	amplifyCmd.Flags().Float64VarP(&amplifyHwOverLw, "ratio", "r", 0, "hw/lw measured from the critical section [required]")
	amplifyCmd.Flags().Float64Var(&amplifyBuildingH, "building-height", 0, "Total building height (m)")
	amplifyCmd.Flags().BoolVar(&amplifySystemOmega, "system-overstrength", false, "Use the single Ω0 alternative")
	amplifyCmd.Flags().Float64Var(&amplifyOmega0, "omega0", 3.0, "System overstrength factor Ω0")
	amplifyCmd.Flags().BoolVar(&amplifyShowProfile, "profile", false, "Show the αc interpolation profile chart")

	amplifyCmd.MarkFlagRequired("shear")
	amplifyCmd.MarkFlagRequired("ratio")
}

func runAmplify(cmd *cobra.Command, args []string) {
	result := shear.AmplifyDemand(amplifyShear, amplifyHwOverLw, amplifyBuildingH,
		amplifySystemOmega, amplifyOmega0)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR DEMAND AMPLIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Analysis shear (Vu):\t%.2f kN\n", amplifyShear)
	fmt.Fprintf(w, "  hw/lw ratio:\t%.3f\n", amplifyHwOverLw)
	if amplifyBuildingH > 0 {
		fmt.Fprintf(w, "  Building height:\t%.1f m\n", amplifyBuildingH)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if result.SystemOverstrength {
		fmt.Fprintf(w, "  Mode:\tsystem overstrength Ω0\n")
		fmt.Fprintf(w, "  Ω0:\t%.3f\n", result.Factor)
	} else {
		fmt.Fprintf(w, "  Ωv (geometry):\t%.3f\n", result.OmegaV)
		fmt.Fprintf(w, "  ωh (height):\t%.3f\n", result.OmegaHeight)
	}
	fmt.Fprintf(w, "  Combined factor:\t%.3f\n", result.Factor)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  AMPLIFIED DEMAND = %.2f kN        \n", result.Demand)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()

	if amplifyShowProfile {
		fmt.Println(diagram.DrawAlphaCProfile(amplifyHwOverLw, nscp.AlphaC))
	}
}
