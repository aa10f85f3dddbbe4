package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/retok/revenue"
	"github.com/retok/revenue/app"
	"github.com/retok/revenue/errors"
)

// Call is a single scripted message execution.
type Call struct {
	// Caller is the account on whose behalf the message is executed. It
	// may be empty for calls that require no caller.
	Caller revenue.Address `json:"caller"`
	Path   string          `json:"path"`
	Msg    json.RawMessage `json:"msg"`
	// Commit persists the state after the call.
	Commit bool `json:"commit"`
}

// Script is a list of calls executed in order.
type Script struct {
	Calls []Call `json:"calls"`
}

// LoadScript reads a json encoded script from the file.
func LoadScript(filePath string) (*Script, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "loading script file: %s", err)
	}
	var s Script
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unmarshaling script file: %s", err)
	}
	return &s, nil
}

// Outcome is the result of a replayed call. Exactly one of Result and Err
// is set.
type Outcome struct {
	Call   Call
	Result *app.Result
	Err    error
	// Commit is set when the call requested a commit and it succeeded.
	Commit *revenue.CommitID
}

// Replay executes all calls of the script. A failed call leaves no trace in
// the state and does not stop the replay, unless stopOnError is set. An
// error is returned only when the state could not be committed or a call
// could not be decoded.
func Replay(host *app.Host, s *Script, stopOnError bool) ([]Outcome, error) {
	var outcomes []Outcome
	for i, call := range s.Calls {
		msg, err := DecodeMsg(call.Path, call.Msg)
		if err != nil {
			return outcomes, errors.Wrapf(err, "call %d", i)
		}
		o := Outcome{Call: call}
		o.Result, o.Err = host.Execute(call.Caller, msg)
		if o.Err == nil && call.Commit {
			id, err := host.Commit()
			if err != nil {
				return outcomes, errors.Wrapf(err, "call %d", i)
			}
			o.Commit = &id
		}
		outcomes = append(outcomes, o)
		if o.Err != nil && stopOnError {
			break
		}
	}
	return outcomes, nil
}
