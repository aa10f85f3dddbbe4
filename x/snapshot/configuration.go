package snapshot

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/gconf"
)

const confPkg = "snapshot"

// Configuration lists the reason codes accepted when minting and burning.
type Configuration struct {
	MintCodes []uint32 `json:"mint_codes"`
	BurnCodes []uint32 `json:"burn_codes"`
}

// DefaultConfiguration is used when no configuration was stored. Minting
// accepts code 0 and burning accepts code 1.
func DefaultConfiguration() Configuration {
	return Configuration{
		MintCodes: []uint32{0},
		BurnCodes: []uint32{1},
	}
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if err := uniqueCodes(c.MintCodes); err != nil {
		return errors.Wrap(err, "mint codes")
	}
	return errors.Wrap(uniqueCodes(c.BurnCodes), "burn codes")
}

func uniqueCodes(codes []uint32) error {
	seen := make(map[uint32]struct{}, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "code %d", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func hasCode(codes []uint32, code uint32) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}

// initConf stores the genesis configuration, if any was provided.
func initConf(db revenue.KVStore, opts revenue.Options) error {
	var conf Configuration
	err := gconf.InitConfig(db, opts, confPkg, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
