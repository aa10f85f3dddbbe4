package snapshot

import (
	"regexp"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

var isTokenName = regexp.MustCompile(`^[a-zA-Z0-9_\- ]{3,32}$`).MatchString

// Token is a single ledger instance.
type Token struct {
	Name string `json:"name"`
	// Restricted tokens consult the transfer rule before a balance can be
	// minted to or transferred to an account.
	Restricted bool `json:"restricted"`
	// Checkpoint is the id of the latest checkpoint.
	Checkpoint int64 `json:"checkpoint"`
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

func (t *Token) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

func (t *Token) Validate() error {
	if !isTokenName(t.Name) {
		return errors.Wrapf(errors.ErrInvalidModel, "invalid name %q", t.Name)
	}
	if t.Checkpoint < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative checkpoint")
	}
	return nil
}

// TokenAddress returns the address owned by the token with the given id.
// Permissions to manage a token are assigned to this address.
func TokenAddress(id []byte) revenue.Address {
	return revenue.NewCondition("snap", "token", id).Address()
}

// FactoryAddress is the target that the permission to create new tokens is
// assigned to.
var FactoryAddress = revenue.NewCondition("snap", "factory", []byte("token")).Address()

func holderKey(id []byte, holder revenue.Address) []byte {
	key := make([]byte, 0, len(id)+len(holder))
	return append(append(key, id...), holder...)
}
