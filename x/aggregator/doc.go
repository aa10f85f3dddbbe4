/*
Package aggregator withdraws from many distributor instances in a single
call.

The aggregator acts under its own identity, Address. It calls WithdrawTo
of every listed instance on behalf of the caller, so the Address must be
allowed to withdraw for others on all of them, usually by holding the
PreApprovedWithdrawer role. Every instance is settled in its own
savepoint. Instances where the caller has nothing to withdraw are skipped,
any other failure aborts the whole batch.
*/
package aggregator
