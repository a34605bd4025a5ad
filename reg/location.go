package reg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joshuapare/regcli/pkg/types"
)

// keyPattern is the key grammar: empty (hive root) or one or more
// backslash-prefixed segments of word characters and spaces.
var keyPattern = regexp.MustCompile(`^(\\[a-zA-Z0-9_\s]+)*$`)

// Location identifies a hive plus key path on an optional remote host.
// It is an immutable value object; all fields are set at construction and
// validated there. Two Locations are equal iff their (host, hive, key)
// tuples are equal.
type Location struct {
	host string
	hive types.Hive
	key  string
}

// NewLocation builds a local Location. The key must be empty (hive root) or
// match the key grammar; validation fails fast with an argument error before
// any process is ever spawned.
func NewLocation(hive types.Hive, key string) (Location, error) {
	return NewRemoteLocation("", hive, key)
}

// NewRemoteLocation builds a Location on the given host ("" = local).
func NewRemoteLocation(host string, hive types.Hive, key string) (Location, error) {
	if !hive.Valid() {
		return Location{}, types.ErrBadHive
	}
	if !keyPattern.MatchString(key) {
		return Location{}, &types.Error{
			Kind: types.ErrKindArgument,
			Msg:  fmt.Sprintf("malformed registry key path %q", key),
			Err:  types.ErrBadKey,
		}
	}
	return Location{host: host, hive: hive, key: key}, nil
}

// ParsePath parses a textual registry path into a Location. Accepted shapes:
//
//	HKLM\Software\Vendor
//	HKEY_LOCAL_MACHINE\Software\Vendor
//	\\server\HKLM\Software\Vendor
//
// The hive token may be in either wire form.
func ParsePath(s string) (Location, error) {
	host := ""
	rest := s
	if strings.HasPrefix(rest, `\\`) {
		rest = rest[2:]
		i := strings.Index(rest, `\`)
		if i < 0 {
			return Location{}, &types.Error{
				Kind: types.ErrKindArgument,
				Msg:  fmt.Sprintf("remote path %q has no hive component", s),
				Err:  types.ErrBadKey,
			}
		}
		host, rest = rest[:i], rest[i+1:]
	}

	token, key, found := strings.Cut(rest, `\`)
	hive, err := types.ParseHive(token)
	if err != nil {
		return Location{}, err
	}
	if found {
		key = `\` + key
	}
	return NewRemoteLocation(host, hive, key)
}

// Host returns the remote host, or "" for the local machine.
func (l Location) Host() string { return l.host }

// Hive returns the top-level registry namespace.
func (l Location) Hive() types.Hive { return l.hive }

// Key returns the backslash-delimited key path ("" = hive root).
func (l Location) Key() string { return l.key }

// Path returns the full path handed to the tool: `\\host\HIVE\key` when a
// host is set, `HIVE\key` otherwise.
func (l Location) Path() string {
	p := l.hive.String() + l.key
	if l.host != "" {
		return `\\` + l.host + `\` + p
	}
	return p
}

// Parent returns the Location with the last key segment removed. The parent
// of a hive root is the root itself.
func (l Location) Parent() Location {
	i := strings.LastIndex(l.key, `\`)
	if i < 0 {
		return l
	}
	p := l
	p.key = l.key[:i]
	return p
}

func (l Location) String() string { return l.Path() }
