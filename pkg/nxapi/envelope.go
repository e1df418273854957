package nxapi

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/nexctl/nexctl/pkg/util"
)

// Output is one command result from the NX-API response envelope.
// A batch request ("cmd1 ; cmd2") yields one Output per command.
type Output struct {
	Input string
	Code  string
	Msg   string
	Body  gjson.Result
	// CLIError carries the device's CLI error text on failed config commands.
	CLIError string
}

// Err returns a CommandError if this output reports failure, nil otherwise.
func (o Output) Err() error {
	if o.Code == "" || o.Code == "200" {
		return nil
	}
	detail := o.Msg
	if o.CLIError != "" {
		detail = o.CLIError
	}
	return util.NewCommandError(o.Input, o.Code, detail)
}

// ParseOutputs unwraps the ins_api transport envelope down to the per-command
// outputs. The device returns outputs.output as a single object when one
// command was sent and as a list for batches; both shapes are normalized to a
// slice here so the ambiguity never leaks past this package.
func ParseOutputs(raw []byte) ([]Output, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("NX-API response is not valid JSON")
	}

	outer := gjson.GetBytes(raw, "ins_api.outputs.output")
	if !outer.Exists() {
		return nil, fmt.Errorf("NX-API response missing ins_api.outputs.output")
	}

	var outputs []Output
	appendOutput := func(res gjson.Result) {
		outputs = append(outputs, Output{
			Input:    res.Get("input").String(),
			Code:     res.Get("code").String(),
			Msg:      res.Get("msg").String(),
			Body:     res.Get("body"),
			CLIError: res.Get("clierror").String(),
		})
	}

	if outer.IsArray() {
		outer.ForEach(func(_, res gjson.Result) bool {
			appendOutput(res)
			return true
		})
	} else {
		appendOutput(outer)
	}

	return outputs, nil
}

// Rows navigates a show-command body to the row region at path (for example
// "TABLE_vlanbriefid.ROW_vlanbriefid") and always returns a list. The device
// returns a single object when there is exactly one row and a list otherwise;
// every caller sees a list.
func Rows(body gjson.Result, path string) []gjson.Result {
	region := body.Get(path)
	if !region.Exists() {
		return nil
	}
	if region.IsArray() {
		return region.Array()
	}
	return []gjson.Result{region}
}
