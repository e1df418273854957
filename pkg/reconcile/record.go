package reconcile

// Record is a flat mapping of canonical field name to string value,
// representing one resource instance in normalized form. Records are built
// fresh per reconciliation and never mutated after creation; Clone before
// changing one.
//
// Policy for empty values, applied uniformly: a field the device reports with
// an empty value is present in the Record as ""; a field the device does not
// report is absent from the Record.
type Record map[string]string

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Equal reports whether two records contain exactly the same fields and values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Propose builds the proposed record from caller-supplied arguments. A field
// is included iff the caller actually supplied a value for it; unset fields
// never participate in diffing ("only touch what you were told to touch").
func Propose(args map[string]string) Record {
	proposed := make(Record)
	for k, v := range args {
		if v != "" {
			proposed[k] = v
		}
	}
	return proposed
}

// Diff returns the fields from proposed that are absent from existing or
// present with a different value. The operation is directional: fields in
// existing that proposed does not mention are never part of the delta (no
// implicit removal), and a field whose desired value already matches is
// excluded even when other fields changed.
func Diff(proposed, existing Record) Record {
	delta := make(Record)
	for field, want := range proposed {
		if have, ok := existing[field]; !ok || have != want {
			delta[field] = want
		}
	}
	return delta
}
