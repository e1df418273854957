package playbook

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

const samplePlaybook = `
name: provision leaf
hosts:
  - n9k-leaf-01
tasks:
  - name: web vlan
    module: vlan
    params:
      vlan_id: 20
      name: web
  - name: enable lacp
    module: feature
    params:
      feature: lacp
      state: enabled
`

func writePlaybook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playbook.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	pb, err := Load(writePlaybook(t, samplePlaybook))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pb.Name != "provision leaf" {
		t.Errorf("name = %q", pb.Name)
	}
	if len(pb.Hosts) != 1 || len(pb.Tasks) != 2 {
		t.Errorf("hosts = %v, tasks = %d", pb.Hosts, len(pb.Tasks))
	}
	// YAML scalars arrive untyped; the module decode handles the int.
	if pb.Tasks[0].Params["vlan_id"] != 20 {
		t.Errorf("vlan_id = %v (%T)", pb.Tasks[0].Params["vlan_id"], pb.Tasks[0].Params["vlan_id"])
	}
}

func TestLoadRejectsUnknownModule(t *testing.T) {
	bad := `
name: bad
hosts: [h1]
tasks:
  - name: nope
    module: bgp_neighbor
`
	if _, err := Load(writePlaybook(t, bad)); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	if _, err := Load(writePlaybook(t, "name: empty\n")); err == nil {
		t.Error("expected error for playbook without hosts or tasks")
	}
}

func newRunClient(t *testing.T) *testutil.FakeClient {
	t.Helper()
	c := testutil.NewFakeClient()
	// VLAN 20 exists but unnamed; lacp already enabled.
	c.StubShow("show vlan id 20",
		testutil.VLANBody(20, "VLAN0020", "active", "noshutdown"),
		testutil.VLANBody(20, "web", "active", "noshutdown"))
	c.StubShowText("show feature", testutil.FeatureText)
	return c
}

func TestRunnerRun(t *testing.T) {
	pb, err := Load(writePlaybook(t, samplePlaybook))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := newRunClient(t)
	runner := NewRunner(func(host string) (reconcile.Client, error) {
		return c, nil
	})

	report, err := runner.Run(context.Background(), pb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Failed {
		t.Fatalf("unexpected failure: %+v", report.Results)
	}
	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}

	if report.Results[0].Status != StatusChanged {
		t.Errorf("task 1 status = %q, want changed", report.Results[0].Status)
	}
	wantCommands := []string{"vlan 20", "name web", "exit"}
	if !reflect.DeepEqual(report.Results[0].Commands, wantCommands) {
		t.Errorf("task 1 commands = %v, want %v", report.Results[0].Commands, wantCommands)
	}
	if report.Results[1].Status != StatusOK {
		t.Errorf("task 2 status = %q, want ok", report.Results[1].Status)
	}
}

func TestRunnerCheckMode(t *testing.T) {
	pb, err := Load(writePlaybook(t, samplePlaybook))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := testutil.NewFakeClient()
	c.StubShow("show vlan id 20", testutil.VLANBody(20, "VLAN0020", "active", "noshutdown"))
	c.StubShowText("show feature", testutil.FeatureText)

	runner := NewRunner(func(host string) (reconcile.Client, error) {
		return c, nil
	})
	runner.Check = true

	report, err := runner.Run(context.Background(), pb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Results[0].Status != StatusWouldChange {
		t.Errorf("task 1 status = %q, want would_change", report.Results[0].Status)
	}
	if len(c.ConfigCalls) != 0 {
		t.Errorf("check mode sent config: %v", c.ConfigCalls)
	}
}

func TestRunnerStopsHostOnFailure(t *testing.T) {
	pb := &Playbook{
		Name:  "fail fast",
		Hosts: []string{"h1"},
		Tasks: []Task{
			{Name: "bad vlan", Module: "vlan", Params: map[string]interface{}{"vlan_id": "5000"}},
			{Name: "after", Module: "feature", Params: map[string]interface{}{"feature": "lacp"}},
		},
	}

	c := testutil.NewFakeClient()
	runner := NewRunner(func(host string) (reconcile.Client, error) {
		return c, nil
	})

	report, err := runner.Run(context.Background(), pb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Failed {
		t.Error("expected failed report")
	}
	if report.Results[0].Status != StatusFailed {
		t.Errorf("task 1 status = %q, want failed", report.Results[0].Status)
	}
	if report.Results[1].Status != StatusSkipped {
		t.Errorf("task 2 status = %q, want skipped", report.Results[1].Status)
	}
}

func TestRunnerCommandModule(t *testing.T) {
	pb := &Playbook{
		Name:  "raw commands",
		Hosts: []string{"h1"},
		Tasks: []Task{
			{Name: "loopback", Module: "command", Params: map[string]interface{}{
				"type":         "config",
				"command_list": []interface{}{"interface loopback13", "ip address 10.13.0.1/32"},
			}},
			{Name: "clock", Module: "command", Params: map[string]interface{}{
				"type":    "show",
				"command": "show clock",
			}},
		},
	}

	c := testutil.NewFakeClient()
	c.StubShow("show clock", `{"simple_time": "12:00:00"}`)
	runner := NewRunner(func(host string) (reconcile.Client, error) {
		return c, nil
	})

	report, err := runner.Run(context.Background(), pb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Failed {
		t.Fatalf("unexpected failure: %+v", report.Results)
	}

	if report.Results[0].Status != StatusChanged {
		t.Errorf("config task status = %q, want changed", report.Results[0].Status)
	}
	wantBatch := []string{"interface loopback13", "ip address 10.13.0.1/32"}
	if !reflect.DeepEqual(c.ConfigCalls, [][]string{wantBatch}) {
		t.Errorf("config calls = %v, want %v", c.ConfigCalls, [][]string{wantBatch})
	}
	if report.Results[1].Status != StatusOK {
		t.Errorf("show task status = %q, want ok", report.Results[1].Status)
	}
}

func TestRunnerRejectsUnknownParam(t *testing.T) {
	pb := &Playbook{
		Name:  "typo",
		Hosts: []string{"h1"},
		Tasks: []Task{
			{Name: "vlan", Module: "vlan", Params: map[string]interface{}{"vlan_idd": "20"}},
		},
	}

	runner := NewRunner(func(host string) (reconcile.Client, error) {
		return testutil.NewFakeClient(), nil
	})

	report, err := runner.Run(context.Background(), pb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Results[0].Status != StatusFailed {
		t.Errorf("status = %q, want failed for unknown param", report.Results[0].Status)
	}
}
