// Package resource defines the per-kind data tables that drive
// reconciliation: how each NX-OS resource is read from the device, how its
// fields and enums normalize, and how deltas render back into CLI commands.
// Kinds are declared as reconcile.Spec values; only the kinds whose device
// output is irregular carry hook functions.
package resource
