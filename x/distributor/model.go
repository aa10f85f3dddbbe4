package distributor

import (
	"encoding/binary"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Distributor is a single accrual engine instance.
type Distributor struct {
	// TokenID is the ledger token whose balances define the shares.
	TokenID []byte `json:"token_id"`
	// Predecessor is the id of the instance that holder entitlements are
	// migrated from. Empty for a fresh deployment.
	Predecessor []byte `json:"predecessor,omitempty"`
	// IncomeCount is the number of registered incomes. Income indexes are
	// in range [1, IncomeCount].
	IncomeCount int64 `json:"income_count"`
}

var _ orm.Model = (*Distributor)(nil)

func (d *Distributor) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(d)
}

func (d *Distributor) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, d)
}

func (d *Distributor) Validate() error {
	if err := orm.ValidateSequence(d.TokenID); err != nil {
		return errors.Wrap(errors.ErrInvalidModel, "token id")
	}
	if len(d.Predecessor) != 0 {
		if err := orm.ValidateSequence(d.Predecessor); err != nil {
			return errors.Wrap(errors.ErrInvalidModel, "predecessor")
		}
	}
	if d.IncomeCount < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative income count")
	}
	return nil
}

// Income is a single entry of the income log.
type Income struct {
	Amount int64 `json:"amount"`
	// Checkpoint is the ledger checkpoint taken together with the income.
	Checkpoint int64 `json:"checkpoint"`
}

var _ orm.Model = (*Income)(nil)

func (i *Income) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(i)
}

func (i *Income) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, i)
}

func (i *Income) Validate() error {
	if i.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidModel, "non-positive amount")
	}
	if i.Checkpoint < 1 {
		return errors.Wrap(errors.ErrInvalidModel, "invalid checkpoint")
	}
	return nil
}

// Holder is the accrual state of a single holder within an instance.
type Holder struct {
	// LastProcessed is the index of the last income integrated into the
	// entitlement.
	LastProcessed int64 `json:"last_processed"`
	// Entitlement is the amount owed to the holder, in income units.
	Entitlement int64 `json:"entitlement"`
	// Initialized is set when the baseline of the holder was seeded.
	Initialized bool `json:"initialized"`
}

var _ orm.Model = (*Holder)(nil)

func (h *Holder) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(h)
}

func (h *Holder) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, h)
}

func (h *Holder) Validate() error {
	if !h.Initialized {
		return errors.Wrap(errors.ErrInvalidModel, "not initialized")
	}
	if h.LastProcessed < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative cursor")
	}
	if h.Entitlement < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative entitlement")
	}
	return nil
}

// Baseline defines where the accrual of a holder starts.
type Baseline struct {
	// Index is the last income that is considered processed. Accrual
	// starts with the income following it.
	Index int64 `json:"index"`
	// FromPredecessor seeds the entitlement with the value held by the
	// predecessor instance instead of zero.
	FromPredecessor bool `json:"from_predecessor"`
}

// InstanceAddress returns the address owned by the instance with the given
// id. It holds the payment funds of the instance, it is the caller seen by
// the ledger and it is the target that permissions are assigned to.
func InstanceAddress(id []byte) revenue.Address {
	return revenue.NewCondition("dist", "income", id).Address()
}

// FactoryAddress is the target that the permission to create new instances
// is assigned to.
var FactoryAddress = revenue.NewCondition("dist", "factory", []byte("income")).Address()

func incomeKey(id []byte, index int64) []byte {
	key := make([]byte, len(id)+8)
	copy(key, id)
	binary.BigEndian.PutUint64(key[len(id):], uint64(index))
	return key
}

func holderKey(id []byte, holder revenue.Address) []byte {
	key := make([]byte, 0, len(id)+len(holder))
	return append(append(key, id...), holder...)
}
