package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindArgument ErrKind = iota // malformed hive, key grammar, or value type
	ErrKindTool                    // the external tool exited non-zero
	ErrKindNotFound                // missing key/value (usually a nil/empty result, not an error)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrBadHive indicates a hive outside the fixed enumeration.
	ErrBadHive = &Error{Kind: ErrKindArgument, Msg: "unknown registry hive"}
	// ErrBadKey indicates a key path violating the key grammar.
	ErrBadKey = &Error{Kind: ErrKindArgument, Msg: "malformed registry key path"}
	// ErrBadType indicates a value type outside the fixed enumeration.
	ErrBadType = &Error{Kind: ErrKindArgument, Msg: "unknown registry value type"}
	// ErrNotFound indicates a missing key/value/path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// ToolError reports a non-zero exit from the external registry tool.
// Failure is inferred from the exit code alone; stderr is not captured.
type ToolError struct {
	ExitCode int      // exit status of the tool process
	Args     []string // argument vector the tool ran with
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("registry tool exited with status %d", e.ExitCode)
}

// -----------------------------------------------------------------------------
// Hives
// -----------------------------------------------------------------------------

// Hive identifies one of the five fixed top-level registry namespaces.
type Hive uint8

const (
	HiveLocalMachine Hive = iota + 1
	HiveCurrentUser
	HiveClassesRoot
	HiveUsers
	HiveCurrentConfig
)

// Hives lists every valid hive, in enumeration order.
var Hives = []Hive{
	HiveLocalMachine,
	HiveCurrentUser,
	HiveClassesRoot,
	HiveUsers,
	HiveCurrentConfig,
}

// String returns the short wire token (HKLM, HKCU, ...) used when building
// paths for the tool.
func (h Hive) String() string {
	switch h {
	case HiveLocalMachine:
		return "HKLM"
	case HiveCurrentUser:
		return "HKCU"
	case HiveClassesRoot:
		return "HKCR"
	case HiveUsers:
		return "HKU"
	case HiveCurrentConfig:
		return "HKCC"
	default:
		return fmt.Sprintf("UNKNOWN_HIVE_%d", uint8(h))
	}
}

// LongName returns the long wire token (HKEY_LOCAL_MACHINE, ...) the tool
// echoes back in query output.
func (h Hive) LongName() string {
	switch h {
	case HiveLocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case HiveCurrentUser:
		return "HKEY_CURRENT_USER"
	case HiveClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case HiveUsers:
		return "HKEY_USERS"
	case HiveCurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	default:
		return fmt.Sprintf("UNKNOWN_HIVE_%d", uint8(h))
	}
}

// Valid reports whether h is inside the fixed enumeration.
func (h Hive) Valid() bool {
	return h >= HiveLocalMachine && h <= HiveCurrentConfig
}

// ParseHive resolves a short (HKLM) or long (HKEY_LOCAL_MACHINE) hive token.
func ParseHive(token string) (Hive, error) {
	for _, h := range Hives {
		if token == h.String() || token == h.LongName() {
			return h, nil
		}
	}
	return 0, &Error{
		Kind: ErrKindArgument,
		Msg:  fmt.Sprintf("unknown registry hive %q", token),
		Err:  ErrBadHive,
	}
}

// -----------------------------------------------------------------------------
// Value Types
// -----------------------------------------------------------------------------

// RegType enumerates the Windows registry value types the tool speaks.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// RegTypes lists every valid value type, in wire-token order.
var RegTypes = []RegType{
	REG_SZ,
	REG_MULTI_SZ,
	REG_EXPAND_SZ,
	REG_DWORD,
	REG_QWORD,
	REG_BINARY,
	REG_NONE,
}

// String implements the Stringer interface for RegType. The result is the
// exact token the tool consumes (/t flag) and emits (query output).
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// Valid reports whether t is inside the fixed enumeration.
func (t RegType) Valid() bool {
	switch t {
	case REG_NONE, REG_SZ, REG_EXPAND_SZ, REG_BINARY, REG_DWORD, REG_MULTI_SZ, REG_QWORD:
		return true
	default:
		return false
	}
}

// ParseRegType resolves a wire token (REG_SZ, REG_DWORD, ...) to a RegType.
func ParseRegType(token string) (RegType, error) {
	for _, t := range RegTypes {
		if token == t.String() {
			return t, nil
		}
	}
	return 0, &Error{
		Kind: ErrKindArgument,
		Msg:  fmt.Sprintf("unknown registry value type %q", token),
		Err:  ErrBadType,
	}
}
