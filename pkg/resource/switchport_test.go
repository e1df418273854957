package resource

import (
	"context"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

func TestSwitchportRead(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show interface Ethernet1/5 switchport",
		testutil.SwitchportBody("Ethernet1/5", "trunk", "1", "99", "10-20"))

	got, err := Switchport().Read(context.Background(), c, "Ethernet1/5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := reconcile.Record{
		"interface":        "Ethernet1/5",
		"switchport":       "Enabled",
		"mode":             "trunk",
		"access_vlan":      "1",
		"access_vlan_name": "default",
		"native_vlan":      "99",
		"native_vlan_name": "default",
		"trunk_vlans":      "10-20",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwitchportCommandsAccess(t *testing.T) {
	existing := reconcile.Record{"mode": "access", "access_vlan": "1"}
	proposed := reconcile.Record{"mode": "access", "access_vlan": "10"}
	delta := reconcile.Diff(proposed, existing)

	got := switchportCommands(delta, proposed, existing, "Ethernet1/5")
	want := []string{"interface Ethernet1/5", "switchport access vlan 10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwitchportCommandsTrunkAdd(t *testing.T) {
	existing := reconcile.Record{"mode": "access", "native_vlan": "1", "trunk_vlans": "1-4094"}
	proposed := reconcile.Record{"mode": "trunk", "native_vlan": "99", "trunk_vlans": "10-20"}
	delta := reconcile.Diff(proposed, existing)

	got := switchportCommands(delta, proposed, existing, "Ethernet1/5")
	// 10-20 is already inside 1-4094, so no allowed-vlan add.
	want := []string{
		"interface Ethernet1/5",
		"switchport mode trunk",
		"switchport trunk native vlan 99",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwitchportCommandsTrunkVLANDelta(t *testing.T) {
	existing := reconcile.Record{"mode": "trunk", "trunk_vlans": "10-15"}
	proposed := reconcile.Record{"mode": "trunk", "trunk_vlans": "10-20,30"}
	delta := reconcile.Diff(proposed, existing)

	got := switchportCommands(delta, proposed, existing, "port-channel10")
	want := []string{
		"interface port-channel10",
		"switchport trunk allowed vlan add 16-20,30",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwitchportCommandsNoChange(t *testing.T) {
	existing := reconcile.Record{"mode": "access", "access_vlan": "10"}
	proposed := reconcile.Record{"mode": "access", "access_vlan": "10"}
	delta := reconcile.Diff(proposed, existing)

	if got := switchportCommands(delta, proposed, existing, "Ethernet1/5"); got != nil {
		t.Errorf("expected no commands, got %v", got)
	}
}

func TestSwitchportDefaults(t *testing.T) {
	existing := reconcile.Record{
		"mode": "trunk", "access_vlan": "1", "native_vlan": "99", "trunk_vlans": "10-20",
	}
	got := switchportDefaults("Ethernet1/5", existing)
	want := []string{
		"interface Ethernet1/5",
		"switchport mode access",
		"switchport access vlan 1",
		"switchport trunk native vlan 1",
		"switchport trunk allowed vlan all",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	alreadyDefault := reconcile.Record{
		"mode": "access", "access_vlan": "1", "native_vlan": "1", "trunk_vlans": "1-4094",
	}
	if got := switchportDefaults("Ethernet1/5", alreadyDefault); got != nil {
		t.Errorf("expected nil for default config, got %v", got)
	}
}

func TestValidateSwitchport(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		desired  map[string]string
		wantErr  bool
	}{
		{"trunk", "Ethernet1/5", map[string]string{"mode": "trunk", "trunk_vlans": "10-20"}, false},
		{"svi", "Vlan10", map[string]string{"mode": "access"}, true},
		{"bad mode", "Ethernet1/5", map[string]string{"mode": "hybrid"}, true},
		{"access vlan in trunk mode", "Ethernet1/5", map[string]string{"mode": "trunk", "access_vlan": "10"}, true},
		{"trunk vlans in access mode", "Ethernet1/5", map[string]string{"mode": "access", "trunk_vlans": "10"}, true},
		{"bad range", "Ethernet1/5", map[string]string{"trunk_vlans": "20-10"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSwitchport(tt.identity, tt.desired)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
