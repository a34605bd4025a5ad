package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <path> <name>",
		Short: "Delete a registry value",
		Long: `The rm command deletes one named value at a registry key. Use an
empty name ("") for the key's default value.

Example:
  regctl rm "HKCU\Software\Vendor" "Sample"
  regctl rm "HKCU\Software\Vendor" ""`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	ctx, cancel := opContext()
	defer cancel()

	if err := newClient().RemoveValue(ctx, loc, name); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	printVerbose("Deleted %q at %s\n", name, loc.Path())
	return nil
}
