package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List all values at a registry key",
		Long: `The values command lists all values at a specific registry key.

Example:
  regctl values "HKCU\Software\Vendor"
  regctl values "HKLM\Software" --json
  regctl values "HKLM\Software\Vendor" --host server01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	values, err := newClient().ListValues(ctx, loc)
	if err != nil {
		return fmt.Errorf("failed to list values: %w", err)
	}

	if jsonOut {
		out := make([]valueJSON, 0, len(values))
		for _, v := range values {
			out = append(out, toValueJSON(v))
		}
		return printJSON(out)
	}

	printVerbose("Values at %s:\n", loc.Path())
	for _, v := range values {
		printInfo("%-30s %-14s %s\n", v.Name(), v.Type(), v.Value())
	}
	printVerbose("%d value(s)\n", len(values))
	return nil
}
