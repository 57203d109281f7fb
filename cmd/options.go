package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/verify"
)

// resolveOptions builds the run options from the defaults, an optional
// YAML config file, and any option flags set on the command. Flags win
// over the file; the file wins over defaults. Flag names are shared
// across the verify and batch commands.
func resolveOptions(cmd *cobra.Command, configFile string) (verify.Options, error) {
	opts := verify.DefaultOptions()

	if configFile != "" {
		loaded, err := verify.LoadOptions(configFile)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("category") {
		opts.SeismicCategory, _ = flags.GetString("category")
	}
	if flags.Changed("lambda") {
		opts.LightweightFactor, _ = flags.GetFloat64("lambda")
	}
	if flags.Changed("building-height") {
		opts.BuildingHeight, _ = flags.GetFloat64("building-height")
	}
	if flags.Changed("overstrength-alternative") {
		opts.UseOverstrengthAlternative, _ = flags.GetBool("overstrength-alternative")
	}
	if flags.Changed("omega0") {
		opts.OverstrengthFactor, _ = flags.GetFloat64("omega0")
	}
	if flags.Changed("force-capacity-design") {
		opts.ForceCapacityDesign, _ = flags.GetBool("force-capacity-design")
	}
	if flags.Changed("workers") {
		opts.Workers, _ = flags.GetInt("workers")
	}

	return opts, nil
}
