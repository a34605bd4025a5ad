package reg

import (
	"regexp"
	"strings"

	"github.com/joshuapare/regcli/pkg/types"
)

// valueLinePattern matches one value line of QUERY output after trimming:
// a name (word characters, spaces, backslash, hyphen), a type token, then
// the data, which may itself contain whitespace and must be non-empty.
//
// The tool's output format is not versioned, so lines that do not match are
// skipped rather than rejected. Do not tighten this.
var valueLinePattern = regexp.MustCompile(
	`^([a-zA-Z0-9_\s\\-]+?)\s+(REG_SZ|REG_MULTI_SZ|REG_EXPAND_SZ|REG_DWORD|REG_QWORD|REG_BINARY|REG_NONE)\s+(\S.*)$`)

// dataLines splits captured stdout into trimmed non-empty lines and drops the
// first one: the tool always echoes the queried path before any items.
func dataLines(raw string) []string {
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lines = append(lines, ln)
	}
	if len(lines) > 0 {
		lines = lines[1:]
	}
	return lines
}

// parseValues extracts every well-formed value line, in emission order.
// Zero matches is a valid empty result (a key with no named values).
func parseValues(raw string, loc Location) []ValueRecord {
	var out []ValueRecord
	for _, ln := range dataLines(raw) {
		m := valueLinePattern.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		typ, err := types.ParseRegType(m[2])
		if err != nil {
			continue
		}
		out = append(out, newValueRecord(loc, strings.TrimSpace(m[1]), typ, m[3]))
	}
	return out
}

// parseSingleValue returns the first well-formed value line, or nil if the
// output contained none.
func parseSingleValue(raw string, loc Location) *ValueRecord {
	recs := parseValues(raw, loc)
	if len(recs) == 0 {
		return nil
	}
	return &recs[0]
}

// parseSubkeys extracts child Locations from a key listing. Lines must start
// with the queried hive's long-form token; the queried key itself is echoed
// back among the results and is excluded.
func parseSubkeys(raw string, loc Location) []Location {
	long := loc.hive.LongName()
	var out []Location
	for _, ln := range dataLines(raw) {
		if !strings.HasPrefix(ln, long) {
			continue
		}
		key := strings.TrimPrefix(ln, long)
		if key == loc.key {
			continue
		}
		out = append(out, Location{host: loc.host, hive: loc.hive, key: key})
	}
	return out
}
