package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a single registry value",
		Long: `The get command reads one named value at a registry key.

Example:
  regctl get "HKCU\Software\Vendor" "Sample"
  regctl get "HKLM\Software\Vendor" "InstallPath" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	ctx, cancel := opContext()
	defer cancel()

	rec, err := newClient().GetValue(ctx, loc, name)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("value %q not found at %s", name, loc.Path())
	}

	if jsonOut {
		return printJSON(toValueJSON(*rec))
	}
	printInfo("%s\n", rec.Value())
	printVerbose("type: %s\n", rec.Type())
	return nil
}
