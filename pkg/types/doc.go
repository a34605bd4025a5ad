// Package types defines the shared vocabulary for talking to the Windows
// registry command-line tool: hive identifiers (short and long wire forms),
// registry value types, and typed errors with stable categories.
//
// This package only exposes enumerations and error types. The command
// construction, process handling, and output parsing live in the reg package.
//
// Design goals:
//   - Small, copyable value types; no shared mutable state.
//   - Exact reproduction of the tool's wire tokens (HKLM/HKEY_*, REG_*).
//   - Typed errors with stable categories (argument/tool/notfound).
//
// This package has no dependencies beyond the standard library.
package types
