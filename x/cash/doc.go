/*
Package cash implements the payment asset that entitlements are settled in.

There is no logic in the asset except that the balance of an account may
never go below zero. Every account holds a single int64 amount of the
smallest settlement unit. Distributor instances hold their funding in the
account derived from their own address and pay holders out of it.
*/
package cash
