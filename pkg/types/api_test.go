package types

import (
	"errors"
	"testing"
)

func TestHive_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		hive  Hive
		short string
		long  string
	}{
		{"local machine", HiveLocalMachine, "HKLM", "HKEY_LOCAL_MACHINE"},
		{"current user", HiveCurrentUser, "HKCU", "HKEY_CURRENT_USER"},
		{"classes root", HiveClassesRoot, "HKCR", "HKEY_CLASSES_ROOT"},
		{"users", HiveUsers, "HKU", "HKEY_USERS"},
		{"current config", HiveCurrentConfig, "HKCC", "HKEY_CURRENT_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hive.String(); got != tt.short {
				t.Errorf("String() = %q, want %q", got, tt.short)
			}
			if got := tt.hive.LongName(); got != tt.long {
				t.Errorf("LongName() = %q, want %q", got, tt.long)
			}
			if !tt.hive.Valid() {
				t.Errorf("Valid() = false for %s", tt.short)
			}
		})
	}
}

func TestParseHive(t *testing.T) {
	// Both wire forms resolve to the same hive.
	for _, h := range Hives {
		short, err := ParseHive(h.String())
		if err != nil {
			t.Fatalf("ParseHive(%q) failed: %v", h.String(), err)
		}
		long, err := ParseHive(h.LongName())
		if err != nil {
			t.Fatalf("ParseHive(%q) failed: %v", h.LongName(), err)
		}
		if short != h || long != h {
			t.Errorf("ParseHive mismatch: short=%v long=%v want %v", short, long, h)
		}
	}

	_, err := ParseHive("HKXX")
	if !errors.Is(err, ErrBadHive) {
		t.Errorf("ParseHive(HKXX) error = %v, want ErrBadHive", err)
	}
}

func TestRegType_String(t *testing.T) {
	tests := []struct {
		regType  RegType
		expected string
	}{
		{REG_NONE, "REG_NONE"},
		{REG_SZ, "REG_SZ"},
		{REG_EXPAND_SZ, "REG_EXPAND_SZ"},
		{REG_BINARY, "REG_BINARY"},
		{REG_DWORD, "REG_DWORD"},
		{REG_MULTI_SZ, "REG_MULTI_SZ"},
		{REG_QWORD, "REG_QWORD"},
		{RegType(99), "UNKNOWN_TYPE_99"},
	}

	for _, tt := range tests {
		if got := tt.regType.String(); got != tt.expected {
			t.Errorf("RegType(%d).String() = %q, want %q", uint32(tt.regType), got, tt.expected)
		}
	}
}

func TestParseRegType(t *testing.T) {
	rt, err := ParseRegType("REG_MULTI_SZ")
	if err != nil {
		t.Fatalf("ParseRegType failed: %v", err)
	}
	if rt != REG_MULTI_SZ {
		t.Errorf("ParseRegType(REG_MULTI_SZ) = %v", rt)
	}

	_, err = ParseRegType("REG_BOGUS")
	if !errors.Is(err, ErrBadType) {
		t.Errorf("ParseRegType(REG_BOGUS) error = %v, want ErrBadType", err)
	}
}

func TestRegType_Valid(t *testing.T) {
	if RegType(5).Valid() {
		t.Error("RegType(5) (REG_DWORD_BE, outside the tool vocabulary) reported valid")
	}
	if !REG_QWORD.Valid() {
		t.Error("REG_QWORD reported invalid")
	}
}
