package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-lang/native-bridge/hostinfo"
)

var hostFeatures bool

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show host CPU and code-generation backend information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := hostinfo.Collect()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "CPU:      %s\n", info.CPU)
		if info.Vendor != "" {
			fmt.Fprintf(out, "Vendor:   %s\n", info.Vendor)
		}
		if info.Threads > 0 {
			fmt.Fprintf(out, "Cores:    %d physical, %d logical\n", info.Cores, info.Threads)
		}
		fmt.Fprintf(out, "Backend:  %s\n", info.Backend)
		if hostFeatures {
			fmt.Fprintf(out, "Features: %s\n", hostinfo.FormatFeatures(info.Features))
		} else {
			fmt.Fprintf(out, "Features: %d detected (use --features to list)\n", len(info.Features))
		}
	},
}

func init() {
	hostCmd.Flags().BoolVar(&hostFeatures, "features", false, "Print the full feature string")
	rootCmd.AddCommand(hostCmd)
}
