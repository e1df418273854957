package reconcile

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/nexctl/nexctl/pkg/util"
)

// FieldMap maps device-native field names to canonical field names.
// Immutable, defined per resource kind. Keys absent from the map are dropped
// during normalization; unmapped vendor fields are not of interest.
type FieldMap map[string]string

// ValueMap rewrites specific field values through a lookup table, keyed by
// canonical field name. Immutable, defined per resource kind that needs value
// translation (e.g. admin-state enums).
type ValueMap map[string]map[string]string

// ApplyKeyMap renames and stringifies fields from a raw device attribute
// table into a flat Record. Total over any well-formed table: unmapped keys
// are dropped silently, and values stringify deterministically (numbers via
// their decimal form, booleans as "true"/"false", null as "").
func ApplyKeyMap(fields FieldMap, table gjson.Result) Record {
	record := make(Record)
	table.ForEach(func(key, value gjson.Result) bool {
		canonical, ok := fields[key.String()]
		if !ok {
			return true
		}
		record[canonical] = stringify(value)
		return true
	})
	return record
}

func stringify(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Number:
		// Integer-valued numbers render without a decimal point.
		n := v.Float()
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return v.String()
	}
}

// ApplyValueMap replaces record values through the lookup table, returning a
// new record. A device-reported value with no mapping entry is schema drift
// and surfaces as a ValueMapError rather than being silently defaulted.
func ApplyValueMap(values ValueMap, record Record) (Record, error) {
	out := record.Clone()
	for field, lookup := range values {
		current, ok := out[field]
		if !ok {
			continue
		}
		mapped, ok := lookup[current]
		if !ok {
			return nil, util.NewValueMapError(field, current)
		}
		out[field] = mapped
	}
	return out, nil
}

// Reverse inverts a ValueMap so the same table serves both directions:
// device-to-canonical on read and canonical-to-device when generating
// commands ("up" <-> "no shutdown").
func Reverse(values ValueMap) ValueMap {
	out := make(ValueMap, len(values))
	for field, lookup := range values {
		inverted := make(map[string]string, len(lookup))
		for deviceValue, canonical := range lookup {
			inverted[canonical] = deviceValue
		}
		out[field] = inverted
	}
	return out
}
