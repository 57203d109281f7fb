package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/diagram"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/shear"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/verify"
)

var (
	groupFile         string
	groupCategoryName string
	groupShowChart    bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Aggregate capacity check of a connected wall group",
	Long: `Check the aggregate shear capacity of wall segments sharing a
common lateral load path.

The summed nominal strength of the segments is capped against the group
material ceiling (0.66·√f'c·ΣAcv), which is stricter than the ceiling
for an individually verified segment. Demand is apportioned to segments
by shear-area share for reporting; the pass/fail verdict uses the
aggregate.

Example JSON file structure:
{
  "name": "Grid C shear wall",
  "fc": 28,
  "demand": 2200,
  "segments": [
    {"name": "C-1", "vn": 980, "length": 2400, "thickness": 250},
    {"name": "C-2", "vn": 785, "length": 1800, "thickness": 250}
  ]
}

Examples:
  shearcheck group --file gridc.json
  shearcheck group -f gridc.json --chart`,
	Run: runGroup,
}

func init() {
	rootCmd.AddCommand(groupCmd)

	groupCmd.Flags().StringVarP(&groupFile, "file", "f", "", "Path to group JSON file [required]")
	groupCmd.MarkFlagRequired("file")

	groupCmd.Flags().StringVar(&groupCategoryName, "category", "SPECIAL", "Seismic category: ORDINARY, INTERMEDIATE or SPECIAL")
	groupCmd.Flags().BoolVar(&groupShowChart, "chart", false, "Show ASCII capacity chart")
}

func runGroup(cmd *cobra.Command, args []string) {
	file, err := verify.LoadGroupFile(groupFile)
	if err != nil {
		fmt.Printf("Error loading group file: %v\n", err)
		return
	}

	category, err := nscp.ParseSeismicCategory(groupCategoryName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	segments := make([]shear.SegmentCapacity, 0, len(file.Members))
	for _, s := range file.Members {
		area := s.ShearArea
		if area <= 0 {
			area = s.Length * s.Thickness
		}
		segments = append(segments, shear.SegmentCapacity{
			Name:      s.Name,
			Vn:        s.Vn,
			ShearArea: area,
		})
	}

	result := shear.AggregateGroup(segments, file.Demand, file.Fc, category)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONNECTED WALL GROUP CAPACITY - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if file.Name != "" {
		fmt.Printf("  Group: %s\n", file.Name)
		fmt.Println()
	}

	fmt.Println("SEGMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Segment\tVn (kN)\tAcv (mm²)\tDemand Share (kN)\n")
	fmt.Fprintf(w, "  ───────\t───────\t─────────\t─────────────────\n")
	for _, s := range result.SegmentShares {
		fmt.Fprintf(w, "  %s\t%.1f\t%.0f\t%.1f\n", s.Name, s.Vn, s.ShearArea, s.DemandShare)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("AGGREGATE CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Σ individual Vn:\t%.1f kN\n", result.Sum)
	fmt.Fprintf(w, "  Group ceiling (0.66·√f'c·ΣAcv):\t%.1f kN\n", result.Ceiling)
	fmt.Fprintf(w, "  Effective capacity:\t%.1f kN\n", result.Effective)
	governs := "sum of individual strengths"
	if result.ControlsGroupLimit {
		governs = "group material ceiling"
	}
	fmt.Fprintf(w, "  Governed by:\t%s\n", governs)
	fmt.Fprintf(w, "  φ:\t%.2f (%s)\n", result.Phi, category)
	fmt.Fprintf(w, "  φVn:\t%.1f kN\n", result.PhiVn)
	fmt.Fprintf(w, "  Demand:\t%.1f kN\n", result.Demand)
	if result.DCRDefined {
		fmt.Fprintf(w, "  DCR:\t%.3f\n", result.DCR)
	} else {
		fmt.Fprintf(w, "  DCR:\tundefined\n")
	}
	w.Flush()
	fmt.Println()

	status := "GROUP PASSES"
	if !result.Passes {
		status = "GROUP FAILS"
	}
	fmt.Print(diagram.DrawSummaryBox("GROUP RESULT", []string{
		status,
		fmt.Sprintf("Effective capacity = %.1f kN", result.Effective),
	}))
	fmt.Println()

	if groupShowChart {
		data := diagram.GroupBarData{
			Sum:       result.Sum,
			Ceiling:   result.Ceiling,
			Effective: result.Effective,
		}
		for _, s := range result.SegmentShares {
			data.SegmentNames = append(data.SegmentNames, s.Name)
			data.SegmentVn = append(data.SegmentVn, s.Vn)
		}
		fmt.Println(diagram.DrawGroupCapacityBar(data))
	}
}
