package cash

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	amino "github.com/tendermint/go-amino"
)

// BucketName is where we store the balances
const BucketName = "cash"

var cdc = amino.NewCodec()

// Wallet holds the balance of a single account.
type Wallet struct {
	Amount int64 `json:"amount"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

// Validate requires the balance to be non negative.
func (w *Wallet) Validate() error {
	if w.Amount < 0 {
		return errors.Wrapf(errors.ErrInvalidModel, "negative balance %d", w.Amount)
	}
	return nil
}

// IssuerAddress is the target that issue permissions are assigned to.
var IssuerAddress = revenue.NewCondition("cash", "issuer", []byte("payment")).Address()
