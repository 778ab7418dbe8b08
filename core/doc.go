// Package core defines Value, the payload type shared by the mcore
// containers.
//
// A Value wraps opaque data together with an ownership mode:
//
//   - Borrow(data): the container stores the data but never releases it.
//   - Own(data, release): the container releases the data exactly once,
//     when the entry is overwritten, removed, or the container is freed.
//
// Release goes through the ReleaseFunc given to Own, or, when that is nil,
// through the data's own Release method if it implements Releaser.
//
// Values are small and copied by value. Release on a Value that is not
// owned is a no-op, so callers that take a Value out of a container (for
// example through stack.Pop) can always call Release when they are done.
//
// Complexity: every operation is O(1) plus the cost of the release hook.
package core
