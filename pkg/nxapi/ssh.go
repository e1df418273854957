package nxapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/crypto/ssh"

	"github.com/nexctl/nexctl/pkg/util"
)

// SSHClient provides the same show/config surface as Client over an SSH exec
// channel, for devices that do not have the nxapi feature enabled. Structured
// show output is requested with the device's "| json" output filter.
type SSHClient struct {
	host   string
	client *ssh.Client
}

// DialSSH connects to the device's SSH CLI using password authentication.
func DialSSH(cfg Config) (*SSHClient, error) {
	port := cfg.Port
	if port == 0 {
		port = 22
	}

	sshCfg := &ssh.ClientConfig{
		User: cfg.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(cfg.Password),
		},
		// Lab/test environment — production would verify host keys.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.Timeout,
	}

	client, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", cfg.Host, port), sshCfg)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", cfg.Host, err)
	}

	return &SSHClient{host: cfg.Host, client: client}, nil
}

// Host returns the configured device host.
func (c *SSHClient) Host() string {
	return c.host
}

// Close closes the SSH connection.
func (c *SSHClient) Close() error {
	return c.client.Close()
}

// Show runs a show command with the "| json" filter and returns the parsed body.
// An empty response means the command produced no applicable rows.
func (c *SSHClient) Show(ctx context.Context, command string) (gjson.Result, error) {
	out, err := c.run(ctx, command+" | json")
	if err != nil {
		return gjson.Result{}, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return gjson.Result{}, nil
	}
	if !gjson.Valid(out) {
		return gjson.Result{}, util.NewCommandError(command, "", "device did not return JSON output")
	}
	return gjson.Parse(out), nil
}

// ShowText runs a show command and returns the raw text output.
func (c *SSHClient) ShowText(ctx context.Context, command string) (string, error) {
	return c.run(ctx, command)
}

// Config applies configuration commands in one exec, wrapped in
// "configure terminal" / "end" the way an operator would type them.
func (c *SSHClient) Config(ctx context.Context, commands []string) error {
	if len(commands) == 0 {
		return nil
	}
	batch := "configure terminal ; " + strings.Join(commands, " ; ") + " ; end"
	out, err := c.run(ctx, batch)
	if err != nil {
		return err
	}
	// The CLI reports rejected lines inline rather than via exit status.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "% Invalid") || strings.Contains(line, "ERROR:") {
			return util.NewCommandError(batch, "", strings.TrimSpace(line))
		}
	}
	return nil
}

// run executes one command in a fresh session, honoring context cancellation.
func (c *SSHClient) run(ctx context.Context, command string) (string, error) {
	session, err := c.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("SSH session to %s: %w", c.host, err)
	}
	defer session.Close()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := session.CombinedOutput(command)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		session.Close()
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", util.NewCommandError(command, "", strings.TrimSpace(string(res.out)))
		}
		return string(res.out), nil
	}
}
