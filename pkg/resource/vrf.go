package resource

import (
	"context"
	"regexp"
	"strings"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

var vrfDescriptionRE = regexp.MustCompile(`description\s+(.+)`)

// VRF reconciles a VRF context: admin state and description. The description
// is not in the structured "show vrf" output, so the read supplements it from
// the running config.
func VRF() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "vrf",
		Commands: reconcile.CommandTable{
			Enter: "vrf context %s",
			Templates: map[string]string{
				"description": "description {value}",
				"admin_state": "{value}",
			},
			Values: reconcile.ValueMap{
				"admin_state": {
					"no shutdown": "up",
					"shutdown":    "down",
				},
			},
			Order: []string{"description", "admin_state"},
		},
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			if identity == "default" || identity == "management" {
				v.AddErrorf("vrf %q is reserved and cannot be managed", identity)
			}
			if state := desired["admin_state"]; state != "" && state != "up" && state != "down" {
				v.AddErrorf("admin_state must be up or down, got %q", state)
			}
			return v.Build()
		},
		ReadExisting: readVRF,
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			return []string{"no vrf context " + identity}
		},
	}
}

func readVRF(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	body, err := c.Show(ctx, "show vrf "+identity)
	if err != nil {
		return nil, err
	}

	rows := nxapi.Rows(body, "TABLE_vrf.ROW_vrf")
	if len(rows) == 0 {
		return reconcile.Record{}, nil
	}

	record := reconcile.ApplyKeyMap(reconcile.FieldMap{
		"vrf_name":  "vrf",
		"vrf_state": "admin_state",
	}, rows[0])
	record, err = reconcile.ApplyValueMap(reconcile.ValueMap{
		"admin_state": {
			"Up":   "up",
			"Down": "down",
		},
	}, record)
	if err != nil {
		return nil, err
	}

	desc, err := readVRFDescription(ctx, c, identity)
	if err != nil {
		return nil, err
	}
	// A VRF with no description line has no description field at all; an
	// empty value would read as "configured but blank".
	if desc != "" {
		record["description"] = desc
	}

	return record, nil
}

func readVRFDescription(ctx context.Context, c reconcile.Client, vrf string) (string, error) {
	out, err := c.ShowText(ctx, "show run section vrf | begin "+vrf+" | include description")
	if err != nil {
		return "", err
	}
	if m := vrfDescriptionRE.FindStringSubmatch(out); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return "", nil
}
