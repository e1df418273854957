package resource

import (
	"context"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

func TestListFeatures(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show feature", testutil.FeatureText)

	got, err := ListFeatures(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"bgp":            "disabled",
		"eigrp":          "disabled",
		"interface-vlan": "enabled",
		"lacp":           "enabled",
		"ospf":           "enabled",
		"vpc":            "disabled",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFeatureReconcileEnable(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show feature", testutil.FeatureText, testutil.FeatureText)
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), Feature(), "bgp",
		map[string]string{"state": "enabled"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"feature bgp"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
}

func TestFeatureReconcileAlreadyEnabled(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show feature", testutil.FeatureText)
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), Feature(), "lacp",
		map[string]string{"state": "enabled"}, reconcile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed || len(result.Commands) != 0 {
		t.Errorf("expected no-op, got %v", result.Commands)
	}
}

func TestFeatureReconcileDisable(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShowText("show feature", testutil.FeatureText)
	driver := reconcile.NewDriver(c)

	result, err := driver.Reconcile(context.Background(), Feature(), "lacp",
		map[string]string{"state": "disabled"}, reconcile.Options{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"no feature lacp"}
	if !reflect.DeepEqual(result.Commands, want) {
		t.Errorf("commands = %v, want %v", result.Commands, want)
	}
}

func TestFeatureValidate(t *testing.T) {
	if err := Feature().Validate("", map[string]string{"state": "enabled"}); err == nil {
		t.Error("expected error for empty feature name")
	}
	if err := Feature().Validate("bgp", map[string]string{"state": "on"}); err == nil {
		t.Error("expected error for bad state")
	}
}
