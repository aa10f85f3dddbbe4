package distributor

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

var _ revenue.Msg = (*CreateMsg)(nil)

// CreateMsg registers a new instance.
type CreateMsg struct {
	TokenID     []byte   `json:"token_id"`
	Predecessor []byte   `json:"predecessor,omitempty"`
	History     []Income `json:"history,omitempty"`
}

// Path returns the routing path for this message
func (CreateMsg) Path() string {
	return "distributor/create"
}

// Validate makes sure that this is sensible
func (m *CreateMsg) Validate() error {
	d := Distributor{TokenID: m.TokenID, Predecessor: m.Predecessor}
	if err := d.Validate(); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	for i, inc := range m.History {
		if err := inc.Validate(); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "income %d: %s", i+1, err)
		}
	}
	return nil
}

var _ revenue.Msg = (*AddIncomeMsg)(nil)

// AddIncomeMsg registers an income.
type AddIncomeMsg struct {
	DistributorID []byte `json:"distributor_id"`
	Amount        int64  `json:"amount"`
}

// Path returns the routing path for this message
func (AddIncomeMsg) Path() string {
	return "distributor/add_income"
}

// Validate makes sure that this is sensible
func (m *AddIncomeMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return validateID(m.DistributorID)
}

var _ revenue.Msg = (*ComputeMsg)(nil)

// ComputeMsg catches a holder up with all registered incomes.
type ComputeMsg struct {
	DistributorID []byte          `json:"distributor_id"`
	Holder        revenue.Address `json:"holder"`
}

// Path returns the routing path for this message
func (ComputeMsg) Path() string {
	return "distributor/compute"
}

// Validate makes sure that this is sensible
func (m *ComputeMsg) Validate() error {
	if err := validateID(m.DistributorID); err != nil {
		return err
	}
	return errors.Wrap(m.Holder.Validate(), "holder")
}

var _ revenue.Msg = (*InitIncomeMsg)(nil)

// InitIncomeMsg seeds the baseline of a holder.
type InitIncomeMsg struct {
	DistributorID []byte          `json:"distributor_id"`
	Holder        revenue.Address `json:"holder"`
	Baseline      Baseline        `json:"baseline"`
}

// Path returns the routing path for this message
func (InitIncomeMsg) Path() string {
	return "distributor/init_income"
}

// Validate makes sure that this is sensible
func (m *InitIncomeMsg) Validate() error {
	if err := validateID(m.DistributorID); err != nil {
		return err
	}
	if m.Baseline.Index < 0 {
		return errors.Wrap(errors.ErrIndexOutOfRange, "negative index")
	}
	return errors.Wrap(m.Holder.Validate(), "holder")
}

var _ revenue.Msg = (*WithdrawMsg)(nil)

// WithdrawMsg settles the entitlement of the caller.
type WithdrawMsg struct {
	DistributorID []byte `json:"distributor_id"`
}

// Path returns the routing path for this message
func (WithdrawMsg) Path() string {
	return "distributor/withdraw"
}

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	return validateID(m.DistributorID)
}

var _ revenue.Msg = (*WithdrawToMsg)(nil)

// WithdrawToMsg settles the entitlement of a holder on behalf of it.
type WithdrawToMsg struct {
	DistributorID []byte          `json:"distributor_id"`
	Holder        revenue.Address `json:"holder"`
}

// Path returns the routing path for this message
func (WithdrawToMsg) Path() string {
	return "distributor/withdraw_to"
}

// Validate makes sure that this is sensible
func (m *WithdrawToMsg) Validate() error {
	if err := validateID(m.DistributorID); err != nil {
		return err
	}
	return errors.Wrap(m.Holder.Validate(), "holder")
}

var _ revenue.Msg = (*TransferToOwnerMsg)(nil)

// TransferToOwnerMsg takes funds out of an instance account.
type TransferToOwnerMsg struct {
	DistributorID []byte `json:"distributor_id"`
	Amount        int64  `json:"amount"`
}

// Path returns the routing path for this message
func (TransferToOwnerMsg) Path() string {
	return "distributor/transfer_to_owner"
}

// Validate makes sure that this is sensible
func (m *TransferToOwnerMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return validateID(m.DistributorID)
}

func validateID(id []byte) error {
	return errors.Wrap(orm.ValidateSequence(id), "distributor id")
}
