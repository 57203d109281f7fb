package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/shear"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/verify"
)

var (
	// Geometry inputs
	verifyLength    float64
	verifyThickness float64
	verifyHeight    float64

	// Material inputs
	verifyFc     float64
	verifyFy     float64
	verifyLambda float64

	// Reinforcement inputs
	verifyAv      float64
	verifySpacing float64
	verifyFyt     float64
	verifyRhoH    float64

	// Demand inputs
	verifyShear1    float64
	verifyShear2    float64
	verifyAxial     float64
	verifyMprTop    float64
	verifyMprBottom float64
	verifyClearSpan float64

	// Options
	verifyCategoryName string
	verifyBuildingH    float64
	verifyOverstrength bool
	verifyOmega0       float64
	verifyForceCD      bool
	verifyInGroup      bool
	verifyConfigFile   string
)

var shearVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify shear strength of a single member",
	Long: `Verify the shear strength of one lateral member for one load
combination, in one or two orthogonal directions.

The member is classified from its geometry, the demand is routed
through capacity design (when probable end moments are given) or the
amplification factors, and the concrete and steel contributions are
assembled into a design strength and demand/capacity ratio.

Examples:
  # A wall panel under in-plane shear
  shearcheck shear verify --length 3000 --thickness 250 --height 7500 \
      --fc 28 --fyt 420 --rho-h 0.0025 --shear1 850 --axial 1200

  # Capacity-design demand from probable end moments
  shearcheck shear verify --length 600 --thickness 600 --height 3000 \
      --fc 28 --av 226 --spacing 100 --fyt 420 \
      --shear1 320 --axial 2100 --mpr-top 410 --mpr-bottom 380 --span 2400`,
	Run: runShearVerify,
}

func init() {
	shearCmd.AddCommand(shearVerifyCmd)

	// Geometry flags
	shearVerifyCmd.Flags().Float64VarP(&verifyLength, "length", "l", 0, "Section length along direction 1 lw (mm) [required]")
	shearVerifyCmd.Flags().Float64VarP(&verifyThickness, "thickness", "t", 0, "Section thickness t (mm) [required]")
	shearVerifyCmd.Flags().Float64VarP(&verifyHeight, "height", "H", 0, "Clear height hw (mm) [required]")

	// Material flags
	shearVerifyCmd.Flags().Float64Var(&verifyFc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	shearVerifyCmd.Flags().Float64Var(&verifyFy, "fy", 415, "Longitudinal steel yield strength fy (MPa)")
	shearVerifyCmd.Flags().Float64Var(&verifyLambda, "lambda", 1.0, "Lightweight concrete factor λ")

	// Reinforcement flags
	shearVerifyCmd.Flags().Float64Var(&verifyAv, "av", 0, "Transverse steel area per shear plane Av (mm²)")
	shearVerifyCmd.Flags().Float64VarP(&verifySpacing, "spacing", "s", 0, "Transverse steel spacing (mm)")
	shearVerifyCmd.Flags().Float64Var(&verifyFyt, "fyt", 420, "Transverse steel yield strength fyt (MPa)")
	shearVerifyCmd.Flags().Float64Var(&verifyRhoH, "rho-h", 0, "Distributed horizontal reinforcement ratio ρt (wall family)")

	// Demand flags
	shearVerifyCmd.Flags().Float64Var(&verifyShear1, "shear1", 0, "Factored shear along direction 1 Vu (kN) [required]")
	shearVerifyCmd.Flags().Float64Var(&verifyShear2, "shear2", 0, "Factored shear along direction 2 Vu (kN)")
	shearVerifyCmd.Flags().Float64VarP(&verifyAxial, "axial", "P", 0, "Factored axial force Pu (kN, compression positive)")
	shearVerifyCmd.Flags().Float64Var(&verifyMprTop, "mpr-top", 0, "Probable overstrength moment at top end (kN·m)")
	shearVerifyCmd.Flags().Float64Var(&verifyMprBottom, "mpr-bottom", 0, "Probable overstrength moment at bottom end (kN·m)")
	shearVerifyCmd.Flags().Float64Var(&verifyClearSpan, "span", 0, "Clear span ln between moment ends (mm)")

	// Option flags
	shearVerifyCmd.Flags().StringVar(&verifyCategoryName, "category", "SPECIAL", "Seismic category: ORDINARY, INTERMEDIATE or SPECIAL")
	shearVerifyCmd.Flags().Float64Var(&verifyBuildingH, "building-height", 0, "Total building height (m), for the height amplification factor")
	shearVerifyCmd.Flags().BoolVar(&verifyOverstrength, "overstrength-alternative", false, "Bound the demand by Ω0 × analysis shear")
	shearVerifyCmd.Flags().Float64Var(&verifyOmega0, "omega0", 3.0, "System overstrength factor Ω0")
	shearVerifyCmd.Flags().BoolVar(&verifyForceCD, "force-capacity-design", false, "Treat the member as capacity-designed even without end moments")
	shearVerifyCmd.Flags().BoolVar(&verifyInGroup, "in-group", false, "Segment belongs to a connected wall group (tighter Vn ceiling)")
	shearVerifyCmd.Flags().StringVarP(&verifyConfigFile, "config", "c", "", "YAML options file (flags override)")

	shearVerifyCmd.MarkFlagRequired("length")
	shearVerifyCmd.MarkFlagRequired("thickness")
	shearVerifyCmd.MarkFlagRequired("height")
	shearVerifyCmd.MarkFlagRequired("shear1")
}

func runShearVerify(cmd *cobra.Command, args []string) {
	opts, err := resolveOptions(cmd, verifyConfigFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	m := verify.Member{
		Name:      "member",
		Length:    verifyLength,
		Thickness: verifyThickness,
		Height:    verifyHeight,
		Fc:        verifyFc,
		Fy:        verifyFy,
		InGroup:   verifyInGroup,
		Reinforcement: verify.Reinforcement{
			Area:    verifyAv,
			Spacing: verifySpacing,
			Fyt:     verifyFyt,
			RhoH:    verifyRhoH,
		},
		Combinations: []verify.Combination{{
			Name:       "CLI",
			Axial:      verifyAxial,
			Shear1:     verifyShear1,
			Shear2:     verifyShear2,
			MprTop1:    verifyMprTop,
			MprBottom1: verifyMprBottom,
			ClearSpan:  verifyClearSpan,
		}},
	}

	res := verify.VerifyMember(m, opts)
	printMemberReport(res, opts)
}

func printMemberReport(res verify.MemberResult, opts verify.Options) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SEISMIC SHEAR VERIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Category (dir 1):\t%s\n", res.Class1.Category)
	fmt.Fprintf(w, "  Formula family:\t%s\n", res.Class1.Family)
	fmt.Fprintf(w, "  lw/t:\t%.3f\n", res.Class1.LwOverT)
	fmt.Fprintf(w, "  hw/lw:\t%.3f\n", res.Class1.HwOverLw)
	fmt.Fprintf(w, "  Seismic category:\t%s (φ = %.2f)\n", opts.Category(), nscp.PhiShearFor(opts.Category()))
	w.Flush()
	fmt.Println()

	for _, cr := range res.Results {
		fmt.Printf("COMBINATION %s:\n", cr.Name)
		fmt.Println("───────────────────────────────────────────────────────────────")
		printDirection(" DIRECTION 1", cr.Dir1)
		if cr.Dir2.Demand != 0 {
			printDirection(" DIRECTION 2", cr.Dir2)
		}

		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if cr.Combined.DCRDefined {
			fmt.Fprintf(w, "  Combined DCR (SRSS):\t%.3f\n", cr.Combined.DCR)
		} else {
			fmt.Fprintf(w, "  Combined DCR (SRSS):\tundefined\n")
		}
		w.Flush()
		fmt.Println()

		if cr.Combined.Passes {
			fmt.Printf("  ╔═════════════════════════════════════════╗\n")
			fmt.Printf("  ║  VERIFICATION PASSES                    ║\n")
			fmt.Printf("  ╚═════════════════════════════════════════╝\n")
		} else {
			fmt.Printf("  ╔═════════════════════════════════════════╗\n")
			fmt.Printf("  ║  VERIFICATION FAILS                     ║\n")
			fmt.Printf("  ╚═════════════════════════════════════════╝\n")
		}
		fmt.Println()

		printWarnings(cr.Warnings)
	}

	printWarnings(res.Warnings)
}

func printDirection(title string, d shear.DirectionalVerification) {
	fmt.Printf(" %s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Demand Vu:\t%.2f kN\n", d.Demand)
	if d.CapacityDesigned {
		fmt.Fprintf(w, "  Demand route:\tcapacity design (Ve from Mpr)\n")
	} else if d.Amplified {
		fmt.Fprintf(w, "  Demand route:\tamplified × %.3f\n", d.AmplificationFactor)
	} else {
		fmt.Fprintf(w, "  Demand route:\traw analysis shear\n")
	}
	if d.Capacity.VcZeroed {
		fmt.Fprintf(w, "  Vc:\t0.00 kN (zero-concrete override)\n")
	} else {
		fmt.Fprintf(w, "  Vc:\t%.2f kN\n", d.Capacity.Vc)
	}
	vsNote := ""
	if d.Capacity.VsLimited {
		vsNote = " (at cap)"
	}
	fmt.Fprintf(w, "  Vs:\t%.2f kN%s\n", d.Capacity.Vs, vsNote)
	vnNote := ""
	if d.Capacity.VnLimited {
		vnNote = " (material ceiling)"
	}
	fmt.Fprintf(w, "  Vn:\t%.2f kN%s\n", d.Capacity.Vn, vnNote)
	fmt.Fprintf(w, "  φVn:\t%.2f kN (φ = %.2f)\n", d.Capacity.PhiVn, d.Capacity.Phi)
	if d.DCRDefined {
		fmt.Fprintf(w, "  DCR:\t%.3f\n", d.DCR)
	} else {
		fmt.Fprintf(w, "  DCR:\tundefined\n")
	}
	w.Flush()
	fmt.Println()
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, warn := range warnings {
		fmt.Printf("  ⚠ %s\n", warn)
	}
	fmt.Println()
}
