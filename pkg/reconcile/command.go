package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// FieldDep declares a cross-field command dependency: when Field appears in a
// delta, Requires must be emitted alongside it, taking its value from the
// existing record when the delta does not change it. The device's command
// syntax demands both together (e.g. duplex cannot be set without re-stating
// speed).
type FieldDep struct {
	Field    string
	Requires string
}

// CommandTable maps canonical field names to CLI command templates for one
// resource kind. Templates use {value} as the placeholder; a template of just
// "{value}" emits the (value-mapped) value itself, which is how boolean-like
// admin state renders to "shutdown" / "no shutdown".
type CommandTable struct {
	// Enter is the context framing template ("interface %s", "vlan %s").
	// Empty means the kind's commands are global (no framing).
	Enter string
	// Exit appends "exit" after the body for context kinds that require it.
	Exit bool
	// Templates maps field name to command template.
	Templates map[string]string
	// Values is the read-direction value map; it is reversed before
	// templating so canonical values render as device keywords.
	Values ValueMap
	// Deps lists cross-field dependencies resolved before templating.
	Deps []FieldDep
	// Order fixes the relative order of the listed fields; fields not
	// listed are emitted after them in sorted order.
	Order []string
}

// Generate maps a delta record into an ordered device CLI command sequence.
// An empty delta yields an empty sequence (no-op, not an error). When framing
// applies, the context-entry command is always first in the sequence.
func Generate(table CommandTable, delta, existing Record, identity string) []string {
	if len(delta) == 0 {
		return nil
	}

	emit := delta.Clone()

	// Resolve dependencies: pull required companion fields from existing
	// state when the delta does not already change them.
	for _, dep := range table.Deps {
		if _, ok := emit[dep.Field]; !ok {
			continue
		}
		if _, ok := emit[dep.Requires]; ok {
			continue
		}
		if v, ok := existing[dep.Requires]; ok && v != "" {
			emit[dep.Requires] = v
		}
	}

	emit = reverseMapValues(table.Values, emit)

	var commands []string
	for _, field := range orderFields(table, emit) {
		tmpl, ok := table.Templates[field]
		if !ok {
			continue
		}
		commands = append(commands, strings.ReplaceAll(tmpl, "{value}", emit[field]))
	}

	if len(commands) == 0 {
		return nil
	}
	return frame(table, identity, commands)
}

// FrameOnly returns just the context entry (and exit) for a kind, used to
// create a framed entity that exists by virtue of entering its context
// (e.g. "vlan 20" alone creates VLAN 20).
func FrameOnly(table CommandTable, identity string) []string {
	if table.Enter == "" {
		return nil
	}
	return frame(table, identity, nil)
}

func frame(table CommandTable, identity string, body []string) []string {
	if table.Enter == "" {
		return body
	}
	commands := make([]string, 0, len(body)+2)
	commands = append(commands, fmt.Sprintf(table.Enter, identity))
	commands = append(commands, body...)
	if table.Exit {
		commands = append(commands, "exit")
	}
	return commands
}

// reverseMapValues applies the inverted value map leniently: values without a
// mapping pass through unchanged. Desired values were already validated
// before the driver ran, so an unmapped value here is a raw device keyword.
func reverseMapValues(values ValueMap, record Record) Record {
	if len(values) == 0 {
		return record
	}
	reversed := Reverse(values)
	out := record.Clone()
	for field, lookup := range reversed {
		if current, ok := out[field]; ok {
			if mapped, found := lookup[current]; found {
				out[field] = mapped
			}
		}
	}
	return out
}

func orderFields(table CommandTable, emit Record) []string {
	seen := make(map[string]bool, len(emit))
	var ordered []string
	for _, field := range table.Order {
		if _, ok := emit[field]; ok {
			ordered = append(ordered, field)
			seen[field] = true
		}
	}
	var rest []string
	for field := range emit {
		if !seen[field] {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
