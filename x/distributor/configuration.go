package distributor

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/gconf"
)

const confPkg = "distributor"

// Configuration holds the numeric parameters of all instances.
type Configuration struct {
	// IncomeScale multiplies every income before it is shared, so that
	// entitlements keep two more digits than the incomes.
	IncomeScale int64 `json:"income_scale"`
	// SettlementScale converts an entitlement into the amount paid in the
	// payment asset.
	SettlementScale int64 `json:"settlement_scale"`
	// MaxIncome is the biggest income that can be registered at once.
	MaxIncome int64 `json:"max_income"`
	// AutoRefreshReads makes CumulativeShareOf return the entitlement a
	// catch-up would produce, instead of the stored one.
	AutoRefreshReads bool `json:"auto_refresh_reads"`
}

// DefaultConfiguration is used when no configuration was stored.
func DefaultConfiguration() Configuration {
	return Configuration{
		IncomeScale:     100,
		SettlementScale: 10000,
		MaxIncome:       1<<40 - 1,
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
	if c.IncomeScale <= 0 {
		return errors.Wrap(errors.ErrInvalidModel, "income scale must be positive")
	}
	if c.SettlementScale <= 0 {
		return errors.Wrap(errors.ErrInvalidModel, "settlement scale must be positive")
	}
	if c.MaxIncome <= 0 {
		return errors.Wrap(errors.ErrInvalidModel, "max income must be positive")
	}
	return nil
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
	conf := DefaultConfiguration()
	err := gconf.InitConfig(db, opts, confPkg, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
