// Package nxapi implements a command client for Cisco NX-OS switches over the
// NX-API HTTP transport, plus an SSH fallback for devices without NX-API
// enabled. Both expose the same show/config surface: structured show output,
// plain-text show output, and batched configuration commands.
package nxapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/nexctl/nexctl/pkg/util"
)

// Request types understood by the NX-API endpoint.
const (
	typeShow     = "cli_show"
	typeShowText = "cli_show_ascii"
	typeConfig   = "cli_conf"
)

// Config holds connection parameters for one device.
// It is passed in explicitly at construction; nothing is read from the
// environment or a shared credentials file.
type Config struct {
	Host     string
	Username string
	Password string
	Scheme   string        // "http" or "https"; default "http"
	Port     int           // default 80 (http) / 443 (https)
	Timeout  time.Duration // per-request; default 30s
	Insecure bool          // skip TLS verification (lab devices with self-signed certs)
}

func (c Config) url() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "http"
	}
	port := c.Port
	if port == 0 {
		if scheme == "https" {
			port = 443
		} else {
			port = 80
		}
	}
	return fmt.Sprintf("%s://%s:%d/ins", scheme, c.Host, port)
}

// Client issues show and config commands to a device via NX-API.
type Client struct {
	cfg  Config
	url  string
	http *http.Client
}

// NewClient creates an NX-API client for the given device.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	transport := http.DefaultTransport
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		cfg: cfg,
		url: cfg.url(),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Host returns the configured device host.
func (c *Client) Host() string {
	return c.cfg.Host
}

// Show issues a structured show command and returns the response body.
// A missing body with a success code means the command produced no applicable
// rows; the zero gjson.Result is returned so callers see "resource absent".
func (c *Client) Show(ctx context.Context, command string) (gjson.Result, error) {
	outputs, err := c.call(ctx, typeShow, command)
	if err != nil {
		return gjson.Result{}, err
	}
	return outputs[0].Body, nil
}

// ShowText issues a show command requesting unstructured text output.
func (c *Client) ShowText(ctx context.Context, command string) (string, error) {
	outputs, err := c.call(ctx, typeShowText, command)
	if err != nil {
		return "", err
	}
	return outputs[0].Body.String(), nil
}

// Config sends configuration commands as one semicolon-joined batch.
// The device applies commands in order with no transactional guarantee; a
// failed command surfaces as a CommandError naming that command.
func (c *Client) Config(ctx context.Context, commands []string) error {
	if len(commands) == 0 {
		return nil
	}
	_, err := c.call(ctx, typeConfig, strings.Join(commands, " ; "))
	return err
}

// insRequest is the NX-API request envelope.
type insRequest struct {
	Version      string `json:"version"`
	Type         string `json:"type"`
	Chunk        string `json:"chunk"`
	SID          string `json:"sid"`
	Input        string `json:"input"`
	OutputFormat string `json:"output_format"`
}

func (c *Client) call(ctx context.Context, reqType, input string) ([]Output, error) {
	payload, err := json.Marshal(map[string]insRequest{
		"ins_api": {
			Version:      "1.0",
			Type:         reqType,
			Chunk:        "0",
			SID:          "1",
			Input:        input,
			OutputFormat: "json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NX-API request to %s: %w", c.cfg.Host, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading NX-API response: %w", err)
	}

	util.WithDevice(c.cfg.Host).Debugf("%s %q took %s", reqType, input, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("NX-API authentication failed for %s@%s", c.cfg.Username, c.cfg.Host)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, util.NewCommandError(input, fmt.Sprintf("http %d", resp.StatusCode), strings.TrimSpace(string(raw)))
	}

	outputs, err := ParseOutputs(raw)
	if err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, util.NewCommandError(input, "", "empty NX-API response")
	}

	for _, out := range outputs {
		if err := out.Err(); err != nil {
			return nil, err
		}
	}

	return outputs, nil
}
