package main

import (
	"github.com/spf13/cobra"

	"keel/internal/kir"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <module.kir>",
	Short: "Print a serialized module in readable form",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	mod, err := readModule(args[0])
	if err != nil {
		return err
	}
	return kir.DumpModule(cmd.OutOrStdout(), mod)
}
