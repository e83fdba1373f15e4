package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-lang/native-bridge/emit"
)

var (
	emitParams   uint64
	emitDispatch uint64
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Dump the trampoline templates for the given addresses",
	Long: `Encode the trampoline jump sequence for every supported architecture
and dump the bytes. The parameter block and dispatch addresses are
baked into the sequence exactly as the template emitter would bake
them at run time.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		buf := make([]byte, emit.JumpSizeAMD64)
		n := emit.EncodeJumpAMD64(buf, uintptr(emitParams), uintptr(emitDispatch))
		fmt.Fprintf(out, "amd64 (%d bytes):\n  % X\n", n, buf[:n])

		buf = make([]byte, emit.JumpSizeARM64)
		n = emit.EncodeJumpARM64(buf, uintptr(emitParams), uintptr(emitDispatch))
		fmt.Fprintf(out, "arm64 (%d bytes):\n  % X\n", n, buf[:n])

		fmt.Fprintf(out, "backend: %s\n", emit.BackendName)
	},
}

func init() {
	emitCmd.Flags().Uint64Var(&emitParams, "params", 0x1000, "Parameter block address to bake in")
	emitCmd.Flags().Uint64Var(&emitDispatch, "dispatch", 0x2000, "Dispatch entry address to bake in")
	rootCmd.AddCommand(emitCmd)
}
