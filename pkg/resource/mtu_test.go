package resource

import (
	"context"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

func TestMTUReconcile(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show interface Ethernet1/1",
		testutil.EthInterfaceBody("Ethernet1/1", "up", "", "auto", "auto", "access"),
		testutil.EthInterfaceBody("Ethernet1/1", "up", "", "auto", "auto", "access"))
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), MTU(), "Ethernet1/1",
		map[string]string{"mtu": "9216"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"interface Ethernet1/1", "mtu 9216"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
}

func TestValidMTU(t *testing.T) {
	tests := []struct {
		mtu  string
		want bool
	}{
		{"1500", true},
		{"9216", true},
		{"576", true},
		{"575", false},
		{"9217", false},
		{"9218", false},
		{"1501", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if got := validMTU(tt.mtu); got != tt.want {
			t.Errorf("validMTU(%q) = %v, want %v", tt.mtu, got, tt.want)
		}
	}
}

func TestSystemJumboMTURead(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show run all | inc jumbomtu", "system jumbomtu 9216\n")

	got, err := SystemJumboMTU().Read(context.Background(), c, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := reconcile.Record{"sysmtu": "9216"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemJumboMTUReconcile(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show run all | inc jumbomtu",
		"system jumbomtu 1500\n", "system jumbomtu 9216\n")
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), SystemJumboMTU(), "",
		map[string]string{"sysmtu": "9216"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"system jumbomtu 9216"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
	if result.EndState["sysmtu"] != "9216" {
		t.Errorf("end state sysmtu = %q, want 9216", result.EndState["sysmtu"])
	}
}
