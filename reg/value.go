package reg

import "github.com/joshuapare/regcli/pkg/types"

// ValueRecord is one named value read from a Location. It is immutable and
// produced only by the output parser; writes go through Client.SetValue
// parameters and never materialize a record.
//
// Value holds the raw textual representation exactly as the tool emitted it.
// No numeric or binary decoding is performed here.
type ValueRecord struct {
	host string
	hive types.Hive
	key  string
	name string
	typ  types.RegType
	data string
}

func newValueRecord(loc Location, name string, typ types.RegType, data string) ValueRecord {
	return ValueRecord{
		host: loc.host,
		hive: loc.hive,
		key:  loc.key,
		name: name,
		typ:  typ,
		data: data,
	}
}

// Host returns the remote host of the owning key, or "" for local.
func (v ValueRecord) Host() string { return v.host }

// Hive returns the hive of the owning key.
func (v ValueRecord) Hive() types.Hive { return v.hive }

// Key returns the key path of the owning key.
func (v ValueRecord) Key() string { return v.key }

// Name returns the value name ("" for the key's default/unnamed value).
func (v ValueRecord) Name() string { return v.name }

// Type returns the declared registry value type.
func (v ValueRecord) Type() types.RegType { return v.typ }

// Value returns the raw textual data, internal whitespace preserved.
func (v ValueRecord) Value() string { return v.data }
