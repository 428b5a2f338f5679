package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keel/internal/config"
	"keel/internal/kir"
	"keel/internal/ownership"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <module.kir>",
	Short: "Verify ownership discipline of a serialized module",
	Long:  `Check decodes a serialized instruction-graph module, validates its structure and reports every operand whose ownership kind is incompatible with its use`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=config default)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.LoadOrDefault(filepath.Dir(path))
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = cfg.Check.Jobs
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiags == 0 {
		maxDiags = cfg.Check.MaxDiagnostics
	}
	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorValue == "" {
		colorValue = cfg.Output.Color
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	mod, err := readModule(path)
	if err != nil {
		return err
	}
	if err := kir.Validate(mod); err != nil {
		return fmt.Errorf("%s: malformed module: %w", path, err)
	}

	bag, err := ownership.CheckModule(cmd.Context(), mod, jobs, maxDiags)
	if err != nil {
		return err
	}
	bag.Sort()

	renderDiagnostics(cmd.OutOrStdout(), bag, shouldColorize(mode))
	if bag.HasErrors() {
		return fmt.Errorf("%s: %d ownership violations", path, bag.Len())
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d functions ok\n", path, len(mod.Funcs))
	}
	return nil
}

func readModule(path string) (*kir.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open module: %w", err)
	}
	defer f.Close()

	mod, err := kir.DecodeModule(f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decode module: %w", path, err)
	}
	return mod, nil
}
