package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/diagram"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/verify"
)

var (
	batchFile       string
	batchConfigFile string
	batchShowChart  bool
	batchSeries     bool
	batchExportFile string
	batchWorkers    int

	// Option overrides shared by name with the verify command
	batchCategoryName string
	batchLambda       float64
	batchBuildingH    float64
	batchOverstrength bool
	batchOmega0       float64
	batchForceCD      bool
)

var shearBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify a batch of members from a JSON file",
	Long: `Verify every member defined in a JSON batch file, in parallel,
and report the governing load combination per member.

Each member carries its own geometry, materials, reinforcement and a
list of factored demand combinations. Members with malformed data are
reported with warnings; the batch always completes.

Example JSON file structure:
{
  "name": "Tower A - Level 1 walls",
  "members": [
    {
      "name": "W-01",
      "length": 3000, "thickness": 250, "height": 7500,
      "fc": 28, "fy": 415,
      "reinforcement": {"area": 157, "spacing": 200, "fyt": 420},
      "combinations": [
        {"name": "1.2D+1.0E+1.0L", "axial": 1200, "shear_1": 850},
        {"name": "0.9D+1.0E", "axial": 700, "shear_1": 910}
      ]
    }
  ]
}

Examples:
  shearcheck shear batch --file walls.json
  shearcheck shear batch -f walls.json --chart --output dcr.png`,
	Run: runShearBatch,
}

func init() {
	shearCmd.AddCommand(shearBatchCmd)

	shearBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to batch JSON file [required]")
	shearBatchCmd.MarkFlagRequired("file")

	shearBatchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "YAML options file (flags override)")
	shearBatchCmd.Flags().BoolVar(&batchShowChart, "chart", false, "Show ASCII DCR chart")
	shearBatchCmd.Flags().BoolVar(&batchSeries, "series", false, "Show DCR-per-combination chart for the governing member")
	shearBatchCmd.Flags().StringVarP(&batchExportFile, "output", "o", "", "Export DCR plot to file (png, svg, pdf)")
	shearBatchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Worker count (0 = one per CPU)")

	shearBatchCmd.Flags().StringVar(&batchCategoryName, "category", "SPECIAL", "Seismic category: ORDINARY, INTERMEDIATE or SPECIAL")
	shearBatchCmd.Flags().Float64Var(&batchLambda, "lambda", 1.0, "Lightweight concrete factor λ")
	shearBatchCmd.Flags().Float64Var(&batchBuildingH, "building-height", 0, "Total building height (m)")
	shearBatchCmd.Flags().BoolVar(&batchOverstrength, "overstrength-alternative", false, "Bound demand by Ω0 × analysis shear")
	shearBatchCmd.Flags().Float64Var(&batchOmega0, "omega0", 3.0, "System overstrength factor Ω0")
	shearBatchCmd.Flags().BoolVar(&batchForceCD, "force-capacity-design", false, "Treat all members as capacity-designed")
}

func runShearBatch(cmd *cobra.Command, args []string) {
	batch, err := verify.LoadBatchFile(batchFile)
	if err != nil {
		fmt.Printf("Error loading batch file: %v\n", err)
		return
	}

	opts, err := resolveOptions(cmd, batchConfigFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result := verify.RunBatch(batch.Members, opts)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATCH SHEAR VERIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if batch.Name != "" {
		fmt.Printf("  Batch: %s\n", batch.Name)
	}
	if batch.Description != "" {
		fmt.Printf("  Description: %s\n", batch.Description)
	}
	fmt.Printf("  Members: %d | Seismic category: %s\n", len(batch.Members), opts.Category())
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tCategory\tGoverning Combo\tDCR\tStatus\n")
	fmt.Fprintf(w, "  ──────\t────────\t───────────────\t───\t──────\n")
	for i, m := range result.Members {
		combo := "-"
		dcr := "-"
		if m.Governing >= 0 {
			combo = m.Results[m.Governing].Name
			if m.Results[m.Governing].Combined.DCRDefined {
				dcr = fmt.Sprintf("%.3f", m.GoverningDCR)
			} else {
				dcr = "undef"
			}
		}
		status := "PASS"
		if !m.Passes {
			status = "FAIL"
		}
		marker := ""
		if i == result.Governing {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s%s\n", m.Name, m.Class1.Category, combo, dcr, status, marker)
	}
	w.Flush()
	fmt.Println()

	// Per-member warnings
	for _, m := range result.Members {
		warnings := append([]string{}, m.Warnings...)
		for _, cr := range m.Results {
			for _, warn := range cr.Warnings {
				warnings = append(warnings, fmt.Sprintf("%s: %s", cr.Name, warn))
			}
		}
		if len(warnings) > 0 {
			fmt.Printf("  %s:\n", m.Name)
			for _, warn := range warnings {
				fmt.Printf("    ⚠ %s\n", warn)
			}
		}
	}
	fmt.Println()

	status := "ALL MEMBERS PASS"
	if !result.Passes {
		status = "ONE OR MORE MEMBERS FAIL"
	}
	lines := []string{status}
	if result.Governing >= 0 {
		lines = append(lines, fmt.Sprintf("Governing: %s (DCR = %.3f)",
			result.Members[result.Governing].Name, result.GoverningDCR))
	}
	fmt.Print(diagram.DrawSummaryBox("BATCH RESULT", lines))
	fmt.Println()

	if batchShowChart {
		fmt.Println(diagram.DrawDCRChart(memberDCRs(result)))
	}

	if batchSeries && result.Governing >= 0 {
		gov := result.Members[result.Governing]
		names := make([]string, 0, len(gov.Results))
		ratios := make([]float64, 0, len(gov.Results))
		for _, cr := range gov.Results {
			names = append(names, cr.Name)
			ratios = append(ratios, cr.Combined.DCR)
		}
		fmt.Println(diagram.DrawCombinationSeries(gov.Name, names, ratios))
	}

	if batchExportFile != "" {
		if err := diagram.ExportDCRPlot(memberDCRs(result), batchExportFile); err != nil {
			fmt.Printf("Error exporting DCR plot: %v\n", err)
		} else {
			fmt.Printf("DCR plot exported to: %s\n", batchExportFile)
		}
	}
}

func memberDCRs(result verify.BatchResult) []diagram.MemberDCR {
	out := make([]diagram.MemberDCR, 0, len(result.Members))
	for _, m := range result.Members {
		out = append(out, diagram.MemberDCR{
			Name:   m.Name,
			DCR:    m.GoverningDCR,
			Passes: m.Passes,
		})
	}
	return out
}
