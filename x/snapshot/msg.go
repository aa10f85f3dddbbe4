package snapshot

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

var _ revenue.Msg = (*CreateTokenMsg)(nil)

// CreateTokenMsg registers a new token.
type CreateTokenMsg struct {
	Name       string `json:"name"`
	Restricted bool   `json:"restricted"`
}

// Path returns the routing path for this message
func (CreateTokenMsg) Path() string {
	return "snapshot/create_token"
}

// Validate makes sure that this is sensible
func (m *CreateTokenMsg) Validate() error {
	if !isTokenName(m.Name) {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid name %q", m.Name)
	}
	return nil
}

var _ revenue.Msg = (*MintMsg)(nil)

// MintMsg creates new balance for a holder.
type MintMsg struct {
	TokenID []byte          `json:"token_id"`
	Holder  revenue.Address `json:"holder"`
	Amount  int64           `json:"amount"`
	Code    uint32          `json:"code"`
}

// Path returns the routing path for this message
func (MintMsg) Path() string {
	return "snapshot/mint"
}

// Validate makes sure that this is sensible
func (m *MintMsg) Validate() error {
	if err := orm.ValidateSequence(m.TokenID); err != nil {
		return errors.Wrap(err, "token id")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return errors.Wrap(m.Holder.Validate(), "holder")
}

var _ revenue.Msg = (*BurnMsg)(nil)

// BurnMsg destroys balance of a holder.
type BurnMsg struct {
	TokenID []byte          `json:"token_id"`
	Holder  revenue.Address `json:"holder"`
	Amount  int64           `json:"amount"`
	Code    uint32          `json:"code"`
}

// Path returns the routing path for this message
func (BurnMsg) Path() string {
	return "snapshot/burn"
}

// Validate makes sure that this is sensible
func (m *BurnMsg) Validate() error {
	if err := orm.ValidateSequence(m.TokenID); err != nil {
		return errors.Wrap(err, "token id")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return errors.Wrap(m.Holder.Validate(), "holder")
}

var _ revenue.Msg = (*TransferMsg)(nil)

// TransferMsg moves balance from the caller to the recipient.
type TransferMsg struct {
	TokenID   []byte          `json:"token_id"`
	Recipient revenue.Address `json:"recipient"`
	Amount    int64           `json:"amount"`
}

// Path returns the routing path for this message
func (TransferMsg) Path() string {
	return "snapshot/transfer"
}

// Validate makes sure that this is sensible
func (m *TransferMsg) Validate() error {
	if err := orm.ValidateSequence(m.TokenID); err != nil {
		return errors.Wrap(err, "token id")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return errors.Wrap(m.Recipient.Validate(), "recipient")
}

var _ revenue.Msg = (*SnapshotMsg)(nil)

// SnapshotMsg creates a new checkpoint.
type SnapshotMsg struct {
	TokenID []byte `json:"token_id"`
}

// Path returns the routing path for this message
func (SnapshotMsg) Path() string {
	return "snapshot/snapshot"
}

// Validate makes sure that this is sensible
func (m *SnapshotMsg) Validate() error {
	return errors.Wrap(orm.ValidateSequence(m.TokenID), "token id")
}
