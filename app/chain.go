package app

import (
	"reflect"

	"github.com/retok/revenue"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []revenue.Decorator
}

// ChainDecorators takes a chain of decorators,
// and upon adding a final Handler (often a Router),
// returns a Handler that will execute this whole stack.
func ChainDecorators(chain ...revenue.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...revenue.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := make([]revenue.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(append(newChain, d.chain...), chain...)
	return Decorators{newChain}
}

// cutoffNil will in-place remove all all nil values from given slice.
func cutoffNil(ds []revenue.Decorator) []revenue.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h revenue.Handler) revenue.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    revenue.Decorator
	next revenue.Handler
}

var _ revenue.Handler = step{}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx revenue.Context, store revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	return s.d.Deliver(ctx, store, msg, s.next)
}
