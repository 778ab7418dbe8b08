// Package stack implements a singly linked LIFO stack of core.Value payloads.
//
// What:
//
//   - Push links a new node above the current top and bumps the count.
//   - Pop unlinks the top node and hands its Value back to the caller.
//     Ownership of an owned payload transfers with it: Pop never releases.
//   - Peek reads the top Value without unlinking.
//   - Free walks top to bottom and releases every owned payload the stack
//     still holds, i.e. the ones never returned to a caller.
//
// Invariant: Size() always equals the number of nodes reachable from the top.
//
// Nil safety: IsEmpty reports true and Size reports 0 on a nil *Stack, so
// callers can probe an optional stack without a guard.
//
// Complexity: every operation is O(1) except Free, which is O(n).
//
// Errors:
//
//   - ErrNilStack    Push on a nil *Stack.
//   - ErrStackFreed  Push after Free.
package stack
