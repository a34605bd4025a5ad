package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a registry key",
		Long: `The create command creates a registry key. Creating a key that
already exists succeeds and changes nothing.

Example:
  regctl create "HKCU\Software\Vendor\NewApp"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	if err := newClient().CreateKey(ctx, loc); err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	printVerbose("Created %s\n", loc.Path())
	return nil
}
