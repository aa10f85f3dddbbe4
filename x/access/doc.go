/*
Package access implements the authorization policy shared by all the
instances of an application.

Accounts are granted numeric roles. Every operation of a target instance
(ledger, distributor, aggregator) is assigned a single role that a caller
must hold in order to execute it. Operations without an explicit assignment
require the admin role. The public role is held by everyone.

	GrantRole(RoleOwner, alice)
	SetTargetFunctionRole(distributor, ["addIncome", "transferToOwner"], RoleOwner)
	Authorize(alice, distributor, "addIncome") // true
*/
package access
