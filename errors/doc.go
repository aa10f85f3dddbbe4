/*
Package errors implements the error taxonomy of the revenue engine.

Every failure returned by a ledger, distributor or aggregator call wraps one of
the root errors declared here. Callers test for a category with the Is method,
for example

	if errors.ErrNoBalance.Is(err) {
		// nothing to withdraw, not a funding problem
	}

The taxonomy is grouped as follows:

	validation:     ErrInvalidAmount, ErrIndexOutOfRange, ErrInvalidInput
	authorization:  ErrUnauthorized
	state:          ErrNotInitialized, ErrAlreadyInitialized, ErrStaleState,
	                ErrNotYetSnapshotted, ErrInvalidState
	resource:       ErrNoBalance, ErrInsufficientFunds

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.
*/
package errors
