package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regcli/pkg/types"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "REG_SZ", "Value type (REG_SZ, REG_DWORD, REG_QWORD, REG_BINARY, REG_MULTI_SZ, REG_EXPAND_SZ, REG_NONE)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <data>",
		Short: "Set a registry value",
		Long: `The set command writes a registry value, overwriting any existing
value of the same name. Use an empty name ("") for the key's default value.

Example:
  regctl set "HKCU\Software\Vendor" "Sample" "hello"
  regctl set "HKCU\Software\Vendor" "Enabled" "1" --type REG_DWORD
  regctl set "HKCU\Software\Vendor" "" "default data"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	name, data := args[1], args[2]

	typ, err := types.ParseRegType(setType)
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	if err := newClient().SetValue(ctx, loc, name, typ, data); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	printVerbose("Set %s %s at %s\n", name, typ, loc.Path())
	return nil
}
