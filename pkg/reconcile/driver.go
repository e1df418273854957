package reconcile

import (
	"context"

	"github.com/nexctl/nexctl/pkg/util"
)

// Result is the outcome of one reconciliation cycle.
type Result struct {
	Kind     string   `json:"kind"`
	Identity string   `json:"identity,omitempty"`
	Existing Record   `json:"existing"`
	Proposed Record   `json:"proposed"`
	EndState Record   `json:"end_state"`
	Commands []string `json:"commands"`
	// Changed is true when commands were sent to the device.
	Changed bool `json:"changed"`
	// WouldChange is true in dry-run mode when commands would have been sent.
	WouldChange bool `json:"would_change,omitempty"`
}

// Options controls one reconciliation cycle.
type Options struct {
	// DryRun computes and reports commands without sending them.
	DryRun bool
	// Absent converges toward removal instead of presence.
	Absent bool
}

// Driver orchestrates the reconciliation cycle: read existing state, compute
// the delta, generate and apply commands, re-read to confirm. One cycle per
// call, no shared state between calls; concurrent calls against the same
// resource are the caller's to serialize.
type Driver struct {
	client Client
}

// NewDriver creates a driver over a device command client.
func NewDriver(client Client) *Driver {
	return &Driver{client: client}
}

// Reconcile converges one resource toward the desired fields.
//
// Validation runs before any device interaction and short-circuits the cycle.
// The applied end state is re-read from the device rather than echoed from
// the commands sent, so partial or rejected configuration shows up in the
// result. The device applies the command batch with no transactional
// guarantee; on command failure the error carries the offending command.
func (d *Driver) Reconcile(ctx context.Context, spec *Spec, identity string, desired map[string]string, opts Options) (*Result, error) {
	log := util.WithDevice(d.client.Host()).WithField("resource", spec.Kind)

	if spec.Validate != nil {
		if err := spec.Validate(identity, desired); err != nil {
			return nil, err
		}
	}

	existing, err := spec.Read(ctx, d.client, identity)
	if err != nil {
		return nil, err
	}

	proposed := Propose(desired)
	result := &Result{
		Kind:     spec.Kind,
		Identity: identity,
		Existing: existing,
		Proposed: proposed,
		EndState: existing,
	}

	commands := d.computeCommands(spec, identity, proposed, existing, opts)
	result.Commands = commands

	if len(commands) == 0 {
		log.Debug("no change")
		return result, nil
	}

	if opts.DryRun {
		result.WouldChange = true
		log.Infof("would send %d command(s): %v", len(commands), commands)
		return result, nil
	}

	if err := d.client.Config(ctx, commands); err != nil {
		return nil, err
	}
	result.Changed = true
	log.Infof("applied %d command(s)", len(commands))

	endState, err := spec.Read(ctx, d.client, identity)
	if err != nil {
		return nil, err
	}
	result.EndState = endState

	return result, nil
}

func (d *Driver) computeCommands(spec *Spec, identity string, proposed, existing Record, opts Options) []string {
	if opts.Absent {
		// Removing a resource that does not exist is a no-op.
		if len(existing) == 0 || spec.AbsentCommands == nil {
			return nil
		}
		return spec.AbsentCommands(identity, existing)
	}

	delta := Diff(proposed, existing)

	if spec.GenerateCommands != nil {
		return spec.GenerateCommands(delta, proposed, existing, identity)
	}

	commands := Generate(spec.Commands, delta, existing, identity)

	// A framed entity that does not exist yet is created by entering its
	// context, even with no attribute changes ("vlan 20" alone creates it).
	if len(commands) == 0 && len(existing) == 0 {
		commands = FrameOnly(spec.Commands, identity)
	}

	return commands
}
