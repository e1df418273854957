package resource

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

func TestVLANRead(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan id 20", testutil.VLANBody(20, "web", "active", "noshutdown"))

	got, err := VLAN().Read(context.Background(), c, "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := reconcile.Record{
		"vlan_id":     "20",
		"name":        "web",
		"vlan_state":  "active",
		"admin_state": "up",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVLANReadMissing(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan id 99", "")

	got, err := VLAN().Read(context.Background(), c, "99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty record for missing vlan, got %v", got)
	}
}

func TestVLANReconcile(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan id 20",
		testutil.VLANBody(20, "VLAN0020", "active", "noshutdown"),
		testutil.VLANBody(20, "web", "active", "shutdown"))
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), VLAN(), "20",
		map[string]string{"name": "web", "admin_state": "down"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCommands := []string{"vlan 20", "name web", "shutdown", "exit"}
	if !reflect.DeepEqual(result.Commands, wantCommands) {
		t.Errorf("commands = %v, want %v", result.Commands, wantCommands)
	}
	if !result.Changed {
		t.Error("expected changed")
	}
	if result.EndState["admin_state"] != "down" {
		t.Errorf("end state admin_state = %q, want down", result.EndState["admin_state"])
	}
}

func TestVLANValidate(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		desired  map[string]string
		wantErr  bool
	}{
		{"valid", "20", map[string]string{"name": "web", "vlan_state": "active"}, false},
		{"id not a number", "abc", nil, true},
		{"id out of range", "5000", nil, true},
		{"bad vlan_state", "20", map[string]string{"vlan_state": "bogus"}, true},
		{"bad admin_state", "20", map[string]string{"admin_state": "enabled"}, true},
		{"name too long", "20", map[string]string{"name": "an-extremely-long-vlan-name-over-32-chars"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateVLAN(tt.identity, tt.desired)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateVLAN(%q, %v) error = %v, wantErr %v",
					tt.identity, tt.desired, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, util.ErrValidationFailed) {
				t.Errorf("error does not wrap ErrValidationFailed: %v", err)
			}
		})
	}
}

func TestListVLANs(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan", testutil.VLANBriefBody(1, 2, 3, 20))

	got, err := ListVLANs(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 2, 3, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReconcileVLANRange(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan",
		testutil.VLANBriefBody(1, 2, 3),
		testutil.VLANBriefBody(1, 2, 3, 4, 5, 20))

	result, err := ReconcileVLANRange(context.Background(), c, "2-5,20", reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCommands := []string{"vlan 4", "vlan 5", "vlan 20"}
	if !reflect.DeepEqual(result.Commands, wantCommands) {
		t.Errorf("commands = %v, want %v", result.Commands, wantCommands)
	}
	if !result.Changed {
		t.Error("expected changed")
	}
	if want := []int{1, 2, 3, 4, 5, 20}; !reflect.DeepEqual(result.EndState, want) {
		t.Errorf("end state = %v, want %v", result.EndState, want)
	}
}

func TestReconcileVLANRangeAbsent(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan",
		testutil.VLANBriefBody(1, 2, 3, 20),
		testutil.VLANBriefBody(1))

	result, err := ReconcileVLANRange(context.Background(), c, "2-3,20,30",
		reconcile.Options{Absent: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCommands := []string{"no vlan 2", "no vlan 3", "no vlan 20"}
	if !reflect.DeepEqual(result.Commands, wantCommands) {
		t.Errorf("commands = %v, want %v", result.Commands, wantCommands)
	}
}

func TestReconcileVLANRangeNoChange(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan", testutil.VLANBriefBody(1, 2, 3))

	result, err := ReconcileVLANRange(context.Background(), c, "2-3", reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed || len(result.Commands) != 0 {
		t.Errorf("expected no-op, got commands %v", result.Commands)
	}
	if len(c.ConfigCalls) != 0 {
		t.Errorf("expected no config calls, got %v", c.ConfigCalls)
	}
}

func TestReconcileVLANRangeDryRun(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vlan", testutil.VLANBriefBody(1))

	result, err := ReconcileVLANRange(context.Background(), c, "10",
		reconcile.Options{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed {
		t.Error("dry run must not report changed")
	}
	if !result.WouldChange {
		t.Error("expected would_change")
	}
	if len(c.ConfigCalls) != 0 {
		t.Errorf("dry run sent config: %v", c.ConfigCalls)
	}
}
