package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

var (
	// Unfactored shears (kN)
	forcesDeadV       float64
	forcesLiveV       float64
	forcesWindV       float64
	forcesEarthquakeV float64

	// Unfactored axial forces (kN, compression positive)
	forcesDeadP       float64
	forcesLiveP       float64
	forcesWindP       float64
	forcesEarthquakeP float64

	// Options
	forcesShowAll     bool
	forcesSeismicOnly bool
)

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Calculate factored member forces using NSCP load combinations",
	Long: `Calculate the factored shear and axial force (Vu, Pu) based on
NSCP 2015 load combinations.

Provide unfactored member forces from different load types and this
command will compute the factored pairs for all applicable NSCP load
combinations and report the one governing by absolute shear.

Load Types:
  D  - Dead load
  L  - Live load
  W  - Wind load
  E  - Earthquake load

Examples:
  # Gravity plus earthquake shear
  shearcheck forces --dead-v 40 --dead-p 800 --eq-v 310 --live-p 250

  # Show all combinations
  shearcheck forces --dead-v 40 --eq-v 310 --all`,
	Run: runForces,
}

func init() {
	rootCmd.AddCommand(forcesCmd)

	forcesCmd.Flags().Float64Var(&forcesDeadV, "dead-v", 0, "Shear due to dead load (kN)")
	forcesCmd.Flags().Float64Var(&forcesLiveV, "live-v", 0, "Shear due to live load (kN)")
	forcesCmd.Flags().Float64Var(&forcesWindV, "wind-v", 0, "Shear due to wind load (kN)")
	forcesCmd.Flags().Float64Var(&forcesEarthquakeV, "eq-v", 0, "Shear due to earthquake load (kN)")

	forcesCmd.Flags().Float64Var(&forcesDeadP, "dead-p", 0, "Axial force due to dead load (kN)")
	forcesCmd.Flags().Float64Var(&forcesLiveP, "live-p", 0, "Axial force due to live load (kN)")
	forcesCmd.Flags().Float64Var(&forcesWindP, "wind-p", 0, "Axial force due to wind load (kN)")
	forcesCmd.Flags().Float64Var(&forcesEarthquakeP, "eq-p", 0, "Axial force due to earthquake load (kN)")

	forcesCmd.Flags().BoolVarP(&forcesShowAll, "all", "a", false, "Show all load combination results")
	forcesCmd.Flags().BoolVar(&forcesSeismicOnly, "seismic", false, "Use only the earthquake combinations")
}

func runForces(cmd *cobra.Command, args []string) {
	loads := nscp.LoadForces{
		Dead:       nscp.MemberForces{Shear: forcesDeadV, Axial: forcesDeadP},
		Live:       nscp.MemberForces{Shear: forcesLiveV, Axial: forcesLiveP},
		Wind:       nscp.MemberForces{Shear: forcesWindV, Axial: forcesWindP},
		Earthquake: nscp.MemberForces{Shear: forcesEarthquakeV, Axial: forcesEarthquakeP},
	}

	if forcesDeadV == 0 && forcesLiveV == 0 && forcesWindV == 0 && forcesEarthquakeV == 0 &&
		forcesDeadP == 0 && forcesLiveP == 0 && forcesWindP == 0 && forcesEarthquakeP == 0 {
		fmt.Println("Error: Please provide at least one unfactored force.")
		fmt.Println("Use 'shearcheck forces --help' for usage information.")
		return
	}

	combinations := nscp.LoadCombinations
	if forcesSeismicOnly {
		combinations = nscp.SeismicCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED FORCE CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tShear (kN)\tAxial (kN)\n")
	fmt.Fprintf(w, "  ────\t──────────\t──────────\n")
	printLoadRow(w, "Dead (D)", loads.Dead)
	printLoadRow(w, "Live (L)", loads.Live)
	printLoadRow(w, "Wind (W)", loads.Wind)
	printLoadRow(w, "Earthquake (E)", loads.Earthquake)
	w.Flush()
	fmt.Println()

	governing, governingCombo := nscp.GoverningShear(loads, combinations)

	if forcesShowAll {
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tVu (kN)\tPu (kN)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\t───────\n")
		for _, combo := range combinations {
			f := combo.Factor(loads)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", combo.ID, combo.Description, f.Shear, f.Axial, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  Vu = %.2f kN | Pu = %.2f kN     \n", governing.Shear, governing.Axial)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()
}

func printLoadRow(w *tabwriter.Writer, name string, f nscp.MemberForces) {
	if f.Shear == 0 && f.Axial == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", name, f.Shear, f.Axial)
}
