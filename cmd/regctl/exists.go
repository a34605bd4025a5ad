package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExistsCmd())
}

func newExistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <path> [name]",
		Short: "Check whether a registry key or value exists",
		Long: `The exists command checks for a registry key, or for a named value
when a name is given. It prints true or false and exits 0 either way;
a non-zero exit means the check itself failed.

Example:
  regctl exists "HKCU\Software\Vendor"
  regctl exists "HKCU\Software\Vendor" "Sample"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(args)
		},
	}
	return cmd
}

func runExists(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	client := newClient()
	var ok bool
	if len(args) == 2 {
		ok, err = client.ValueExists(ctx, loc, args[1])
	} else {
		ok, err = client.KeyExists(ctx, loc)
	}
	if err != nil {
		return fmt.Errorf("existence check failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]bool{"exists": ok})
	}
	printInfo("%t\n", ok)
	return nil
}
