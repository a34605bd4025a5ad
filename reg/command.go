package reg

import (
	"fmt"

	"github.com/joshuapare/regcli/pkg/types"
)

// Argument-vector builders, one per logical operation. Builders never execute
// anything; the only validation done here is the set-value type check, which
// must fail before a process is spawned.

// queryArgs lists a key: both value listings and subkey listings run the same
// QUERY and are told apart by the parser mode.
func queryArgs(loc Location) []string {
	return []string{"QUERY", loc.Path()}
}

func getValueArgs(loc Location, name string) []string {
	return []string{"QUERY", loc.Path(), "/v", name}
}

func setValueArgs(loc Location, name string, typ types.RegType, data string) ([]string, error) {
	if !typ.Valid() {
		return nil, &types.Error{
			Kind: types.ErrKindArgument,
			Msg:  fmt.Sprintf("cannot set value with type %s", typ),
			Err:  types.ErrBadType,
		}
	}
	args := []string{"ADD", loc.Path()}
	if name == "" {
		args = append(args, "/ve")
	} else {
		args = append(args, "/v", name)
	}
	return append(args, "/t", typ.String(), "/d", data, "/f"), nil
}

func removeValueArgs(loc Location, name string) []string {
	args := []string{"DELETE", loc.Path(), "/f"}
	if name == "" {
		return append(args, "/ve")
	}
	return append(args, "/v", name)
}

// eraseKeyArgs clears all values under the key but keeps the key itself.
func eraseKeyArgs(loc Location) []string {
	return []string{"DELETE", loc.Path(), "/f", "/va"}
}

func createKeyArgs(loc Location) []string {
	return []string{"ADD", loc.Path()}
}

// deleteKeyArgs removes the key and all descendants, recursively.
func deleteKeyArgs(loc Location) []string {
	return []string{"DELETE", loc.Path(), "/f"}
}
