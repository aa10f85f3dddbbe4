/*
Package app wires the revenue extensions into a host.

It is a good place to see how the ledger, the accrual engine, the
aggregator and the supporting extensions share one access controller and
one store.
*/
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retok/revenue"
	"github.com/retok/revenue/app"
	"github.com/retok/revenue/store/iavl"
	"github.com/retok/revenue/x/access"
	"github.com/retok/revenue/x/aggregator"
	"github.com/retok/revenue/x/cash"
	"github.com/retok/revenue/x/distributor"
	"github.com/retok/revenue/x/snapshot"
	"github.com/retok/revenue/x/utils"
	"github.com/retok/revenue/x/whitelist"
	"github.com/tendermint/tendermint/libs/log"
)

// Stack holds the controllers of all extensions. They are stateless, all
// state lives in the store passed to each call.
type Stack struct {
	Access     access.Controller
	Cash       cash.Controller
	Whitelist  *whitelist.Controller
	Ledger     *snapshot.Controller
	Engine     *distributor.Controller
	Aggregator *aggregator.Controller
}

// NewStack returns the controllers wired together. All of them authorize
// with the same role based access controller.
func NewStack() *Stack {
	auth := access.NewController()
	payments := cash.NewController()
	lists := whitelist.NewController()
	ledger := snapshot.NewController(auth, lists)
	engine := distributor.NewController(auth, ledger, payments)
	return &Stack{
		Access:     auth,
		Cash:       payments,
		Whitelist:  lists,
		Ledger:     ledger,
		Engine:     engine,
		Aggregator: aggregator.NewController(auth, engine),
	}
}

// Chain returns a chain of decorators, to handle logging, recovery and
// tagging of the executed action.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// a failed call drops its events as well as its changes
		utils.NewSavepoint(),
	)
}

// Router returns a router dispatching to all extensions.
func (s *Stack) Router() *app.Router {
	r := app.NewRouter()
	access.RegisterRoutes(r, s.Access)
	cash.RegisterRoutes(r, s.Access, s.Cash)
	whitelist.RegisterRoutes(r, s.Access, s.Whitelist)
	snapshot.RegisterRoutes(r, s.Access, s.Ledger)
	distributor.RegisterRoutes(r, s.Access, s.Engine)
	aggregator.RegisterRoutes(r, s.Aggregator)
	return r
}

// Handler wires the router with the decorator chain.
func (s *Stack) Handler() revenue.Handler {
	return Chain().WithHandler(s.Router())
}

// Initializer loads all extensions from the genesis. Roles come first, the
// instances last because they are anchored to existing tokens.
func (s *Stack) Initializer() revenue.Initializer {
	return app.ChainInitializers(
		access.Initializer{},
		cash.Initializer{},
		whitelist.Initializer{},
		snapshot.Initializer{},
		distributor.Initializer{Ledger: s.Ledger},
	)
}

// NewHost returns a host backed by the database at dbPath. An empty path
// keeps the state in memory.
func NewHost(dbPath string, logger log.Logger) (*app.Host, *Stack, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	stack := NewStack()
	host, err := app.NewHost(kv, stack.Handler())
	if err != nil {
		return nil, nil, err
	}
	return host.WithLogger(logger).WithInit(stack.Initializer()), stack, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (revenue.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
