/*
Package distributor implements the income accrual engine.

A distributor instance is bound to a ledger token. Every registered income
takes a checkpoint of the token, so the income is shared among holders in
proportion to the balances at that moment. Nothing is computed for the
holders when income arrives. Instead every holder keeps a cursor into the
append only income log and an entitlement. Catching a holder up integrates
all incomes after the cursor:

	entitlement += floor(share(holder, cp) * amount * IncomeScale / 1000000)

for every unprocessed income (amount, cp), each term rounded down on its
own. The cost of a catch-up is proportional to the number of incomes the
holder missed, and it is paid by the holder when withdrawing.

Entitlements are kept in income units. On withdrawal the entitlement is
multiplied by SettlementScale and paid in the payment asset from the account
owned by the instance.

An instance may be created with a predecessor. A holder that was never seen
by the new instance is seeded once with the entitlement the predecessor
holds for it, see migration.go.
*/
package distributor
