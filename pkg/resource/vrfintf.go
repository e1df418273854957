package resource

import (
	"context"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// VRFInterface reconciles the VRF membership of one layer-3 interface. The
// identity is the interface name and the single managed field is "vrf".
// Re-binding an interface to a different VRF wipes its IP config on the
// device side, which is the device's behavior, not this tool's.
func VRFInterface() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "vrf_interface",
		Commands: reconcile.CommandTable{
			Enter: "interface %s",
			Templates: map[string]string{
				"vrf": "vrf member {value}",
			},
		},
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			switch util.GetInterfaceType(identity) {
			case util.InterfaceUnknown:
				v.AddErrorf("unknown interface type for %q", identity)
			case util.InterfaceManagement:
				v.AddError("mgmt0 is bound to the management vrf and cannot be changed")
			}
			return v.Build()
		},
		ReadExisting: readVRFInterface,
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			vrf := existing["vrf"]
			if vrf == "" || vrf == "default" {
				return nil
			}
			return []string{"interface " + identity, "no vrf member " + vrf}
		},
	}
}

// readVRFInterface treats membership in the default VRF as "not configured":
// the device reports every L3 interface under some VRF, and default is the
// unbound state.
func readVRFInterface(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	body, err := c.Show(ctx, "show vrf all interface "+identity)
	if err != nil {
		return nil, err
	}

	rows := nxapi.Rows(body, "TABLE_if.ROW_if")
	if len(rows) == 0 {
		return reconcile.Record{}, nil
	}

	record := reconcile.ApplyKeyMap(reconcile.FieldMap{
		"if_name":  "interface",
		"vrf_name": "vrf",
	}, rows[0])
	if record["vrf"] == "default" {
		return reconcile.Record{}, nil
	}
	return record, nil
}
