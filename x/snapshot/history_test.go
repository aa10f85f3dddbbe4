package snapshot

import (
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
)

func TestHistoryAt(t *testing.T) {
	var h History
	assert.Equal(t, int64(0), h.At(0))
	assert.Equal(t, int64(0), h.At(10))
	assert.Equal(t, int64(0), h.Latest())

	h.Record(1, 100)
	h.Record(1, 150) // last value wins
	h.Record(3, 50)
	h.Record(7, 0)
	h.Record(8, 20)
	assert.Equal(t, 4, len(h.Entries))

	cases := map[int64]int64{
		0:   0,
		1:   150,
		2:   150,
		3:   50,
		6:   50,
		7:   0,
		8:   20,
		100: 20,
	}
	for cp, want := range cases {
		if got := h.At(cp); got != want {
			t.Errorf("at %d: want %d, got %d", cp, want, got)
		}
	}
	assert.Equal(t, int64(20), h.Latest())
	assert.Nil(t, h.Validate())

	raw, err := h.Marshal()
	assert.Nil(t, err)
	var loaded History
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, h, loaded)
}

func TestHistoryValidate(t *testing.T) {
	cases := map[string]struct {
		h       History
		wantErr *errors.Error
	}{
		"empty": {},
		"valid": {
			h: History{Entries: []Entry{{Checkpoint: 1, Value: 5}, {Checkpoint: 2}}},
		},
		"not increasing": {
			h:       History{Entries: []Entry{{Checkpoint: 2, Value: 5}, {Checkpoint: 2, Value: 6}}},
			wantErr: errors.ErrInvalidModel,
		},
		"negative value": {
			h:       History{Entries: []Entry{{Checkpoint: 1, Value: -5}}},
			wantErr: errors.ErrInvalidModel,
		},
		"genesis checkpoint": {
			h:       History{Entries: []Entry{{Checkpoint: 0, Value: 5}}},
			wantErr: errors.ErrInvalidModel,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.h.Validate())
		})
	}
}
