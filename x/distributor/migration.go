package distributor

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

// PredecessorReader is the read only capability a retiring instance
// provides to its successor.
type PredecessorReader interface {
	// EntitlementOf returns the entitlement the holder has in the
	// instance, including incomes the holder was not caught up with yet.
	EntitlementOf(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address) (int64, error)
}

var _ PredecessorReader = (*Controller)(nil)

// EntitlementOf returns the entitlement a catch-up of the holder would
// produce, without changing any state. An instance that has nothing to
// accrue from owes nothing.
func (c *Controller) EntitlementOf(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address) (int64, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return 0, err
	}
	h, err := c.refreshed(db, id, d, holder)
	switch {
	case err == nil:
		return h.Entitlement, nil
	case errors.ErrNotInitialized.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// seed returns the entitlement a holder starts with in the instance. It is
// called once per holder, when the holder is first touched. The Initialized
// flag stored with the holder afterwards guarantees it is never seeded
// again.
func (c *Controller) seed(db revenue.ReadOnlyKVStore, d *Distributor, holder revenue.Address) (int64, error) {
	if len(d.Predecessor) == 0 {
		return 0, nil
	}
	v, err := c.predecessors.EntitlementOf(db, d.Predecessor, holder)
	if err != nil {
		return 0, errors.Wrapf(err, "predecessor %X", d.Predecessor)
	}
	return v, nil
}
