package reconcile

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/nexctl/nexctl/pkg/nxapi"
)

// Client is the device command collaborator the reconciliation core drives.
// Both the NX-API HTTP client and the SSH fallback satisfy it. Every call is
// a blocking round-trip; errors are surfaced, never retried here.
type Client interface {
	// Show issues a read-only query with structured output.
	Show(ctx context.Context, command string) (gjson.Result, error)
	// ShowText issues a read-only query with plain-text output.
	ShowText(ctx context.Context, command string) (string, error)
	// Config applies configuration commands as one ordered batch.
	Config(ctx context.Context, commands []string) error
	// Host identifies the device for logging.
	Host() string
}

// Spec describes one resource kind entirely as data: how to read it, how to
// normalize what the device returns, and how to render changes back into CLI
// commands. Hooks exist only for the kinds whose device output is too
// irregular for the generic path.
type Spec struct {
	// Kind names the resource ("vlan", "interface", "snmp_host", ...).
	Kind string

	// ShowCommand builds the read command for an identity.
	ShowCommand func(identity string) string
	// RowsPath is the TABLE_/ROW_ path to the attribute table in the body.
	RowsPath string
	// Fields maps device field names to canonical names.
	Fields FieldMap
	// Values translates device enums to canonical values (and back).
	Values ValueMap
	// Commands renders deltas into CLI commands.
	Commands CommandTable

	// Validate checks identity and desired fields before any device
	// interaction. Optional.
	Validate func(identity string, desired map[string]string) error
	// ReadExisting overrides the generic read path. Optional.
	ReadExisting func(ctx context.Context, c Client, identity string) (Record, error)
	// GenerateCommands overrides table-driven command generation for kinds
	// with irregular syntax (trunk vlan add/remove, snmp host). Optional.
	GenerateCommands func(delta, proposed, existing Record, identity string) []string
	// AbsentCommands renders removal of an existing resource. Optional;
	// kinds without it do not support state=absent.
	AbsentCommands func(identity string, existing Record) []string
}

// Read materializes the current state of one resource as a normalized Record.
// A resource that does not exist yields an empty Record, not an error — that
// is the "not yet configured" signal the diff engine keys on. Transport and
// parse failures return errors.
func (s *Spec) Read(ctx context.Context, c Client, identity string) (Record, error) {
	if s.ReadExisting != nil {
		return s.ReadExisting(ctx, c, identity)
	}

	body, err := c.Show(ctx, s.ShowCommand(identity))
	if err != nil {
		return nil, err
	}

	rows := nxapi.Rows(body, s.RowsPath)
	if len(rows) == 0 {
		return Record{}, nil
	}

	record := ApplyKeyMap(s.Fields, rows[0])
	if len(s.Values) > 0 {
		record, err = ApplyValueMap(s.Values, record)
		if err != nil {
			return nil, err
		}
	}
	return record, nil
}
