package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quill-lang/native-bridge/dynlib"
	"github.com/quill-lang/native-bridge/emit"
	"github.com/quill-lang/native-bridge/execmem"
	"github.com/quill-lang/native-bridge/trampoline"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "probe",
	Short:         "Inspect native libraries, symbols, and the trampoline backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		dynlib.SetLogger(logger.Named("dynlib"))
		trampoline.SetLogger(logger.Named("trampoline"))
		execmem.SetLogger(logger.Named("execmem"))
		emit.SetLogger(logger.Named("emit"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
