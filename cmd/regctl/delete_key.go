package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteKeyForce bool

func init() {
	cmd := newDeleteKeyCmd()
	cmd.Flags().BoolVarP(&deleteKeyForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(cmd)
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key and all its subkeys",
		Long: `The delete-key command recursively deletes a registry key, its
values, and all its subkeys. This is destructive and irreversible.

Example:
  regctl delete-key "HKCU\Software\OldApp"
  regctl delete-key "HKCU\Software\OldApp" --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
	return cmd
}

func runDeleteKey(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}

	if !deleteKeyForce {
		fmt.Printf("Recursively delete %s and all its subkeys? [y/N]: ", loc.Path())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	ctx, cancel := opContext()
	defer cancel()

	if err := newClient().DeleteKey(ctx, loc); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	printVerbose("Deleted %s\n", loc.Path())
	return nil
}
