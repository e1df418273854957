package resource

import (
	"context"
	"strings"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// ExecResult is the outcome of a raw command execution.
type ExecResult struct {
	Commands []string `json:"commands"`
	// Output carries the show response: the structured body as JSON, or the
	// plain-text rendering when text mode was requested.
	Output      string `json:"output,omitempty"`
	Changed     bool   `json:"changed"`
	WouldChange bool   `json:"would_change,omitempty"`
}

// ExecShow runs one raw show command outside any resource mapping. One
// command per call; config batches go through ExecConfig.
func ExecShow(ctx context.Context, c reconcile.Client, command string, text bool) (*ExecResult, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, util.NewValidationError("show command must not be empty")
	}

	res := &ExecResult{Commands: []string{command}}
	if text {
		out, err := c.ShowText(ctx, command)
		if err != nil {
			return nil, err
		}
		res.Output = out
		return res, nil
	}

	body, err := c.Show(ctx, command)
	if err != nil {
		return nil, err
	}
	res.Output = body.Raw
	return res, nil
}

// ExecConfig sends raw configuration commands as one batch. Dry-run reports
// the batch without sending it. The device applies the batch with no
// transactional guarantee, same as reconciled commands.
func ExecConfig(ctx context.Context, c reconcile.Client, commands []string, opts reconcile.Options) (*ExecResult, error) {
	batch := make([]string, 0, len(commands))
	for _, cmd := range commands {
		if s := strings.TrimSpace(cmd); s != "" {
			batch = append(batch, s)
		}
	}
	if len(batch) == 0 {
		return nil, util.NewValidationError("config command batch must not be empty")
	}

	res := &ExecResult{Commands: batch}
	if opts.DryRun {
		res.WouldChange = true
		return res, nil
	}
	if err := c.Config(ctx, batch); err != nil {
		return nil, err
	}
	res.Changed = true
	return res, nil
}
