package playbook

import (
	"context"
	"fmt"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// TaskStatus is the outcome class of one task on one host.
type TaskStatus string

const (
	StatusOK          TaskStatus = "ok"
	StatusChanged     TaskStatus = "changed"
	StatusWouldChange TaskStatus = "would_change"
	StatusFailed      TaskStatus = "failed"
	StatusSkipped     TaskStatus = "skipped"
)

// TaskResult is the report for one task on one host.
type TaskResult struct {
	Host     string     `json:"host"`
	Task     string     `json:"task"`
	Module   string     `json:"module"`
	Status   TaskStatus `json:"status"`
	Commands []string   `json:"commands,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// RunReport aggregates a playbook run.
type RunReport struct {
	Playbook string       `json:"playbook"`
	Results  []TaskResult `json:"results"`
	// Failed is true when any task failed on any host.
	Failed bool `json:"failed"`
}

// ClientFactory resolves a playbook host name to a device client.
type ClientFactory func(host string) (reconcile.Client, error)

// Runner executes playbooks host by host, task by task. A failed task stops
// the remaining tasks for that host; tasks on other hosts still run.
type Runner struct {
	clients ClientFactory
	// Check computes commands without sending them (dry run).
	Check bool
}

// NewRunner creates a runner over a client factory.
func NewRunner(clients ClientFactory) *Runner {
	return &Runner{clients: clients}
}

// Run executes the playbook and returns the per-task report. The returned
// error covers only run-level failures (a host that cannot be resolved);
// task failures are reported in the results with Failed set.
func (r *Runner) Run(ctx context.Context, pb *Playbook) (*RunReport, error) {
	report := &RunReport{Playbook: pb.Name}

	for _, host := range pb.Hosts {
		client, err := r.clients(host)
		if err != nil {
			return nil, fmt.Errorf("resolving host %q: %w", host, err)
		}
		r.runHost(ctx, client, host, pb, report)
	}
	return report, nil
}

func (r *Runner) runHost(ctx context.Context, client reconcile.Client, host string, pb *Playbook, report *RunReport) {
	log := util.WithDevice(host).WithField("playbook", pb.Name)
	failed := false

	for _, task := range pb.Tasks {
		result := TaskResult{Host: host, Task: task.Name, Module: task.Module}

		if failed {
			result.Status = StatusSkipped
			report.Results = append(report.Results, result)
			continue
		}

		outcome, err := r.runTask(ctx, client, task)
		switch {
		case err != nil:
			result.Status = StatusFailed
			result.Error = err.Error()
			failed = true
			report.Failed = true
			log.WithField("task", task.Name).Errorf("failed: %v", err)
		case outcome.Changed:
			result.Status = StatusChanged
			result.Commands = outcome.Commands
			log.WithField("task", task.Name).Info("changed")
		case outcome.WouldChange:
			result.Status = StatusWouldChange
			result.Commands = outcome.Commands
			log.WithField("task", task.Name).Info("would change")
		default:
			result.Status = StatusOK
			log.WithField("task", task.Name).Debug("ok")
		}

		report.Results = append(report.Results, result)
	}
}

func (r *Runner) runTask(ctx context.Context, client reconcile.Client, task Task) (*Outcome, error) {
	module, ok := modules[task.Module]
	if !ok {
		return nil, fmt.Errorf("unknown module %q: %w", task.Module, util.ErrUnsupported)
	}
	return module(ctx, client, task.Params, reconcile.Options{DryRun: r.Check})
}
