package resource

import (
	"context"
	"strconv"
	"strings"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// MTU reconciles the MTU of one interface. The identity is the interface
// name; the system-wide jumbo MTU is a separate kind because it has no
// interface context.
func MTU() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "mtu",
		ShowCommand: func(identity string) string {
			return "show interface " + identity
		},
		RowsPath: "TABLE_interface.ROW_interface",
		Fields: reconcile.FieldMap{
			"interface": "interface",
			"eth_mtu":   "mtu",
			"svi_mtu":   "mtu",
		},
		Commands: reconcile.CommandTable{
			Enter: "interface %s",
			Templates: map[string]string{
				"mtu": "mtu {value}",
			},
		},
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			if util.GetInterfaceType(identity) == util.InterfaceUnknown {
				v.AddErrorf("unknown interface type for %q", identity)
			}
			if mtu := desired["mtu"]; mtu != "" {
				v.Add(validMTU(mtu), "mtu must be an even value between 576 and 9216")
			}
			return v.Build()
		},
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			mtu := existing["mtu"]
			if mtu == "" {
				return nil
			}
			return []string{"interface " + identity, "no mtu " + mtu}
		},
	}
}

// SystemJumboMTU reconciles the global jumbo MTU. The running config is the
// only place the device reports it, so the read is a text parse.
func SystemJumboMTU() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "system_mtu",
		Commands: reconcile.CommandTable{
			Templates: map[string]string{
				"sysmtu": "system jumbomtu {value}",
			},
		},
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			if mtu := desired["sysmtu"]; mtu != "" {
				v.Add(validMTU(mtu), "sysmtu must be an even value between 576 and 9216")
			}
			return v.Build()
		},
		ReadExisting: func(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
			out, err := c.ShowText(ctx, "show run all | inc jumbomtu")
			if err != nil {
				return nil, err
			}
			fields := strings.Fields(strings.TrimSpace(out))
			if len(fields) == 0 {
				return reconcile.Record{}, nil
			}
			last := fields[len(fields)-1]
			if !util.IsDigits(last) {
				return reconcile.Record{}, nil
			}
			return reconcile.Record{"sysmtu": last}, nil
		},
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			mtu := existing["sysmtu"]
			if mtu == "" {
				return nil
			}
			return []string{"no system jumbomtu " + mtu}
		},
	}
}

func validMTU(mtu string) bool {
	n, err := strconv.Atoi(mtu)
	if err != nil {
		return false
	}
	return n >= 576 && n <= 9216 && n%2 == 0
}
