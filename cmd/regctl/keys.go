package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List the direct subkeys of a registry key",
		Long: `The keys command lists the direct subkeys of a registry key.

Example:
  regctl keys "HKCU\Software"
  regctl keys "HKLM\Software\Vendor" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	keys, err := newClient().ListSubkeys(ctx, loc)
	if err != nil {
		return fmt.Errorf("failed to list subkeys: %w", err)
	}

	if jsonOut {
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, k.Path())
		}
		return printJSON(out)
	}

	for _, k := range keys {
		printInfo("%s\n", k.Path())
	}
	printVerbose("%d subkey(s)\n", len(keys))
	return nil
}
