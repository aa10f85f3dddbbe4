package whitelist

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Entry records that an account is on a list.
type Entry struct {
	List    revenue.Address `json:"list"`
	Account revenue.Address `json:"account"`
}

var _ orm.Model = (*Entry)(nil)

func (e *Entry) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(e)
}

func (e *Entry) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, e)
}

func (e *Entry) Validate() error {
	if err := e.List.Validate(); err != nil {
		return errors.Wrap(err, "list")
	}
	if err := e.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}

func entryKey(list, account revenue.Address) []byte {
	key := make([]byte, 0, len(list)+len(account))
	return append(append(key, list...), account...)
}
