package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-lang/native-bridge/dynlib"
)

var libSymbols []string

var libCmd = &cobra.Command{
	Use:   "lib <name>",
	Short: "Resolve a native library and optionally its symbols",
	Long: `Resolve a native library through the handle registry and print the handle.

Bare names are probed in the platform's candidate spellings ("m",
"m.so", "libm.so"). The reserved names "@self" and "@default" resolve
the running executable image and the loader's default namespace.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		reg := dynlib.NewRegistry(dynlib.NewSystemLoader())
		out := cmd.OutOrStdout()

		if len(libSymbols) == 0 {
			h := reg.Resolve(name)
			if h == 0 {
				return fmt.Errorf("cannot open library %q", name)
			}
			fmt.Fprintf(out, "%-24s handle %#x\n", name, uintptr(h))
			return nil
		}

		var slot dynlib.Slot
		for _, symbol := range libSymbols {
			addr, err := reg.LoadAndLookup(&slot, name, symbol)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-24s %#x\n", symbol, addr)
		}
		fmt.Fprintf(out, "%-24s handle %#x\n", name, uintptr(slot.Handle()))
		return nil
	},
}

func init() {
	libCmd.Flags().StringSliceVarP(&libSymbols, "symbol", "s", nil, "Symbols to resolve in the library (repeatable)")
	rootCmd.AddCommand(libCmd)
}
