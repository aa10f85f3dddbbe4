/*
Package snapshot implements a balance ledger that can answer questions
about the past.

Every token keeps the current balances of its holders and a sequence of
immutable checkpoints. A checkpoint is created explicitly with Snapshot and
identifies the state of all balances at the moment it was taken. The first
checkpoint has id 1, checkpoint 0 is the empty genesis state.

Instead of copying the balances of every holder on each checkpoint, a
mutation records the new value of the changed balance (and of the total
supply) under the id of the next checkpoint. The history of a balance is
thus a short list of (checkpoint, value) pairs ordered by checkpoint and the
value at checkpoint cp is the last entry recorded at or before cp, found
with a binary search.

Balance movements of restricted tokens are checked by a TransferRule.
Minting and burning require a reason code that is allowed by the package
configuration.
*/
package snapshot
