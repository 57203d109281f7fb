package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of shearcheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shearcheck v%s\n", version.Version)
		fmt.Println("Seismic Shear Verification for RC Lateral Members")
		fmt.Println("Based on NSCP 2015 (National Structural Code of the Philippines)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
