package revenue

import (
	"encoding/json"
	"regexp"

	"github.com/retok/revenue/errors"
)

// Msg is a request to execute one operation against the state, for example
// "add income" or "withdraw". It is just the request, and must be validated
// by the Handlers. The caller on whose behalf the operation runs is carried
// by the context.
type Msg interface {
	Validater

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string
}

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_\-/]+$`).MatchString

// ValidatePath returns an error if the given message path is not in the
// expected format.
func ValidatePath(path string) error {
	if !isPath(path) {
		return errors.ErrInvalidInput.Newf("invalid path %q", path)
	}
	return nil
}

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}

// Handler is a core engine that can process a few specific messages
// This could represent "add income", or "withdraw entitlement"
type Handler interface {
	Deliver(ctx Context, store KVStore, msg Msg) (*DeliverResult, error)
}

// HandlerFunc turns a function into a Handler.
type HandlerFunc func(ctx Context, store KVStore, msg Msg) (*DeliverResult, error)

// Deliver calls the wrapped function.
func (fn HandlerFunc) Deliver(ctx Context, store KVStore, msg Msg) (*DeliverResult, error) {
	return fn(ctx, store, msg)
}

// Decorator wraps a Handler to provide common functionality
// like logging, or panic recovery, to many Handlers
type Decorator interface {
	Deliver(ctx Context, store KVStore, msg Msg, next Handler) (*DeliverResult, error)
}

// DeliverResult captures any non-error processing of a message.
type DeliverResult struct {
	// Data is the operation specific response, for example the checkpoint
	// created by a snapshot or the index of a registered income.
	Data interface{}
	// Log is human-readable informational string
	Log string
	// Events are everything emitted while the message was processed.
	Events []Event
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot parse %q genesis: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
