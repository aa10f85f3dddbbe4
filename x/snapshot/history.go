package snapshot

import (
	"sort"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

// Entry is the value a balance has from its checkpoint onwards.
type Entry struct {
	Checkpoint int64 `json:"checkpoint"`
	Value      int64 `json:"value"`
}

// History is the sparse list of changes of a single balance, ordered by
// checkpoint.
type History struct {
	Entries []Entry `json:"entries"`
}

var _ orm.Model = (*History)(nil)

func (h *History) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(h)
}

func (h *History) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, h)
}

// Validate requires strictly increasing checkpoints and non negative
// values.
func (h *History) Validate() error {
	for i, e := range h.Entries {
		if e.Value < 0 {
			return errors.Wrapf(errors.ErrInvalidModel, "negative value at %d", e.Checkpoint)
		}
		if e.Checkpoint < 1 {
			return errors.Wrapf(errors.ErrInvalidModel, "invalid checkpoint %d", e.Checkpoint)
		}
		if i > 0 && h.Entries[i-1].Checkpoint >= e.Checkpoint {
			return errors.Wrap(errors.ErrInvalidModel, "checkpoints not increasing")
		}
	}
	return nil
}

// Latest returns the current value.
func (h *History) Latest() int64 {
	if len(h.Entries) == 0 {
		return 0
	}
	return h.Entries[len(h.Entries)-1].Value
}

// At returns the value at the given checkpoint, which is the value of the
// last entry recorded at or before it. Zero is returned when nothing was
// recorded yet.
func (h *History) At(cp int64) int64 {
	// Index of the first entry after cp.
	n := sort.Search(len(h.Entries), func(i int) bool {
		return h.Entries[i].Checkpoint > cp
	})
	if n == 0 {
		return 0
	}
	return h.Entries[n-1].Value
}

// Record sets the value from the given checkpoint onwards. Recording the
// same checkpoint again overwrites the previous value.
func (h *History) Record(cp, value int64) {
	if n := len(h.Entries); n > 0 && h.Entries[n-1].Checkpoint == cp {
		h.Entries[n-1].Value = value
		return
	}
	h.Entries = append(h.Entries, Entry{Checkpoint: cp, Value: value})
}
