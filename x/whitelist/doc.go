/*
Package whitelist restricts balance movements of a ledger token to
approved accounts.

A list is identified by an address, usually the address of the token it
guards. An account may receive minted balance only when it is on the list,
and a transfer is allowed only when both the sender and the recipient are
on the list.
*/
package whitelist
