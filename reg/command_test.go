package reg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regcli/pkg/types"
)

func mustLocation(t *testing.T, hive types.Hive, key string) Location {
	t.Helper()
	loc, err := NewLocation(hive, key)
	require.NoError(t, err)
	return loc
}

func TestCommandVectors(t *testing.T) {
	loc := mustLocation(t, types.HiveCurrentUser, `\Software\Vendor`)

	assert.Equal(t,
		[]string{"QUERY", `HKCU\Software\Vendor`},
		queryArgs(loc))

	assert.Equal(t,
		[]string{"QUERY", `HKCU\Software\Vendor`, "/v", "Sample"},
		getValueArgs(loc, "Sample"))

	assert.Equal(t,
		[]string{"DELETE", `HKCU\Software\Vendor`, "/f", "/v", "Sample"},
		removeValueArgs(loc, "Sample"))

	assert.Equal(t,
		[]string{"DELETE", `HKCU\Software\Vendor`, "/f", "/ve"},
		removeValueArgs(loc, ""))

	assert.Equal(t,
		[]string{"DELETE", `HKCU\Software\Vendor`, "/f", "/va"},
		eraseKeyArgs(loc))

	assert.Equal(t,
		[]string{"ADD", `HKCU\Software\Vendor`},
		createKeyArgs(loc))

	assert.Equal(t,
		[]string{"DELETE", `HKCU\Software\Vendor`, "/f"},
		deleteKeyArgs(loc))
}

func TestSetValueArgs(t *testing.T) {
	loc := mustLocation(t, types.HiveCurrentUser, `\Software\Vendor`)

	args, err := setValueArgs(loc, "Sample", types.REG_SZ, "hello world")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"ADD", `HKCU\Software\Vendor`, "/v", "Sample", "/t", "REG_SZ", "/d", "hello world", "/f"},
		args)

	// Empty name targets the key's default value.
	args, err = setValueArgs(loc, "", types.REG_DWORD, "1")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"ADD", `HKCU\Software\Vendor`, "/ve", "/t", "REG_DWORD", "/d", "1", "/f"},
		args)

	// An unknown type fails before any process would be spawned.
	_, err = setValueArgs(loc, "Sample", types.RegType(42), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrBadType))
}
