package revenuetest

import "github.com/retok/revenue"

// Handler is a mock implementation of the revenue.Handler interface.
//
// It returns the configured result and error and counts the calls.
type Handler struct {
	deliverCall   int
	DeliverResult revenue.DeliverResult
	DeliverErr    error
	// Write, if set, is stored in the database on every call.
	Write *KV
	// Panic, if set, is used as the panic message of every call.
	Panic string
}

// KV is a single key value pair.
type KV struct {
	Key   []byte
	Value []byte
}

var _ revenue.Handler = (*Handler)(nil)

func (h *Handler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	h.deliverCall++
	if h.Panic != "" {
		panic(h.Panic)
	}
	if h.Write != nil {
		if err := db.Set(h.Write.Key, h.Write.Value); err != nil {
			return nil, err
		}
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) CallCount() int {
	return h.deliverCall
}

// Msg is a mock message routed by its path.
type Msg struct {
	RoutePath   string
	ValidateErr error
}

var _ revenue.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.ValidateErr
}
