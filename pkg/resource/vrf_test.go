package resource

import (
	"context"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

func TestVRFRead(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf ntc", testutil.VRFBody("ntc", "Up"))
	c.StubShowText("show run section vrf | begin ntc | include description",
		"  description tenant network\n")

	got, err := readVRF(context.Background(), c, "ntc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := reconcile.Record{
		"vrf":         "ntc",
		"admin_state": "up",
		"description": "tenant network",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVRFReadNoDescription(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf ntc", testutil.VRFBody("ntc", "Up"))
	c.StubShowText("show run section vrf | begin ntc | include description", "")

	got, err := readVRF(context.Background(), c, "ntc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := reconcile.Record{
		"vrf":         "ntc",
		"admin_state": "up",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVRFReadMissing(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf nope", "")

	got, err := readVRF(context.Background(), c, "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty record, got %v", got)
	}
}

func TestVRFReconcileCreate(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf ntc", "", testutil.VRFBody("ntc", "Up"))
	c.StubShowText("show run section vrf | begin ntc | include description",
		"  description tenant network\n")
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), VRF(), "ntc",
		map[string]string{"description": "tenant network"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"vrf context ntc", "description tenant network"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
}

func TestVRFValidateReserved(t *testing.T) {
	for _, name := range []string{"default", "management"} {
		if err := VRF().Validate(name, nil); err == nil {
			t.Errorf("expected error for reserved vrf %q", name)
		}
	}
	if err := VRF().Validate("ntc", map[string]string{"admin_state": "down"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVRFAbsent(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf ntc", testutil.VRFBody("ntc", "Up"))
	c.StubShowText("show run section vrf | begin ntc | include description", "")
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), VRF(), "ntc", nil,
		reconcile.Options{Absent: true, DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"no vrf context ntc"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
}

func TestVRFInterfaceRead(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf all interface Ethernet1/1",
		testutil.VRFInterfaceBody("Ethernet1/1", "ntc"))

	got, err := readVRFInterface(context.Background(), c, "Ethernet1/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := reconcile.Record{"interface": "Ethernet1/1", "vrf": "ntc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVRFInterfaceReadDefault(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf all interface Ethernet1/1",
		testutil.VRFInterfaceBody("Ethernet1/1", "default"))

	got, err := readVRFInterface(context.Background(), c, "Ethernet1/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("default vrf membership should read as unconfigured, got %v", got)
	}
}

func TestVRFInterfaceReconcile(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show vrf all interface Ethernet1/1",
		testutil.VRFInterfaceBody("Ethernet1/1", "default"),
		testutil.VRFInterfaceBody("Ethernet1/1", "ntc"))
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), VRFInterface(), "Ethernet1/1",
		map[string]string{"vrf": "ntc"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"interface Ethernet1/1", "vrf member ntc"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
	if result.EndState["vrf"] != "ntc" {
		t.Errorf("end state vrf = %q, want ntc", result.EndState["vrf"])
	}
}

func TestVRFInterfaceValidateManagement(t *testing.T) {
	if err := VRFInterface().Validate("mgmt0", map[string]string{"vrf": "ntc"}); err == nil {
		t.Error("expected error for mgmt0")
	}
}
