/*
Package app contains the host that executes calls against the ledger.

The host owns the committed store. Every call runs on a cache wrap of it
and is either applied as a whole or discarded together with all events it
emitted. Commit persists the applied calls as a new version.

Handlers are composed with ChainDecorators and a Router:

	app.ChainDecorators(
	  utils.NewLogging(),
	  utils.NewRecovery(),
	  utils.NewActionTagger(),
	).WithHandler(
	  myapp.Router(),
	)
*/
package app
