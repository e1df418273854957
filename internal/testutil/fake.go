// Package testutil provides test fakes and canned device payloads.
package testutil

import (
	"context"

	"github.com/tidwall/gjson"
)

// FakeClient is a scripted reconcile.Client. Show responses are stubbed per
// command as a queue of JSON bodies, so a reconciliation's read and re-read
// can see different device state. Every call is recorded.
type FakeClient struct {
	DeviceName string

	showBodies map[string][]string
	textBodies map[string][]string
	showErrs   map[string]error

	ConfigErr error

	ShowCalls   []string
	ConfigCalls [][]string
}

// NewFakeClient creates an empty fake device.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		DeviceName: "fake-switch",
		showBodies: make(map[string][]string),
		textBodies: make(map[string][]string),
		showErrs:   make(map[string]error),
	}
}

// StubShow queues JSON bodies for a show command, consumed one per call.
// An empty string body means "no applicable rows" (resource absent).
func (f *FakeClient) StubShow(command string, bodies ...string) {
	f.showBodies[command] = append(f.showBodies[command], bodies...)
}

// StubShowText queues text outputs for a text-mode show command.
func (f *FakeClient) StubShowText(command string, outputs ...string) {
	f.textBodies[command] = append(f.textBodies[command], outputs...)
}

// StubShowErr makes a show command fail.
func (f *FakeClient) StubShowErr(command string, err error) {
	f.showErrs[command] = err
}

func (f *FakeClient) Show(ctx context.Context, command string) (gjson.Result, error) {
	f.ShowCalls = append(f.ShowCalls, command)
	if err := f.showErrs[command]; err != nil {
		return gjson.Result{}, err
	}
	queue := f.showBodies[command]
	if len(queue) == 0 {
		return gjson.Result{}, nil
	}
	body := queue[0]
	f.showBodies[command] = queue[1:]
	if body == "" {
		return gjson.Result{}, nil
	}
	return gjson.Parse(body), nil
}

func (f *FakeClient) ShowText(ctx context.Context, command string) (string, error) {
	f.ShowCalls = append(f.ShowCalls, command)
	if err := f.showErrs[command]; err != nil {
		return "", err
	}
	queue := f.textBodies[command]
	if len(queue) == 0 {
		return "", nil
	}
	out := queue[0]
	f.textBodies[command] = queue[1:]
	return out, nil
}

func (f *FakeClient) Config(ctx context.Context, commands []string) error {
	f.ConfigCalls = append(f.ConfigCalls, commands)
	return f.ConfigErr
}

func (f *FakeClient) Host() string {
	return f.DeviceName
}
