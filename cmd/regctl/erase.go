package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEraseCmd())
}

func newEraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erase <path>",
		Short: "Delete all values under a registry key, keeping the key",
		Long: `The erase command deletes every value under a registry key. The
key itself (and its subkeys) remain.

Example:
  regctl erase "HKCU\Software\Vendor"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(args)
		},
	}
	return cmd
}

func runErase(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	if err := newClient().EraseKey(ctx, loc); err != nil {
		return fmt.Errorf("failed to erase key: %w", err)
	}
	printVerbose("Erased all values at %s\n", loc.Path())
	return nil
}
