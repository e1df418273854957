// Package reconcile implements declarative state reconciliation for network
// devices: read current state through a command client, normalize it into a
// flat record, diff it against operator-declared desired state, render the
// minimal CLI command sequence, apply it, and re-read to confirm.
//
// Resource kinds are described by data tables (field maps, value maps, command
// templates) rather than per-kind code paths; see the resource package for the
// kind definitions.
package reconcile
