// SPDX-License-Identifier: MIT
//
// File: value.go
// Role: Ownership-tagged opaque payload shared by hashmap and stack.
// Policy:
//   - A Value is immutable once built; ownership is fixed at construction.
//   - Containers call release exactly once per owned Value they drop.
//   - No locking: Values travel with the single-threaded containers.

package core

// ReleaseFunc disposes of an owned payload.
// It receives the payload the Value was built with.
type ReleaseFunc func(data any)

// Releaser is implemented by payloads that know how to dispose of themselves.
// Own(data, nil) falls back to data.Release() when data implements Releaser.
type Releaser interface {
	Release()
}

// Value is an opaque payload tagged as borrowed or owned.
//
// Borrowed values are never touched by a container: the caller stays
// responsible for whatever the payload refers to. Owned values carry a
// release hook that the container invokes when the value is superseded,
// removed or torn down.
//
// The zero Value is a borrowed nil payload.
type Value struct {
	data    any
	release ReleaseFunc
	owned   bool
}

// Borrow wraps data as a borrowed Value.
// Complexity: O(1).
func Borrow(data any) Value {
	return Value{data: data}
}

// Own wraps data as an owned Value.
// release is invoked once when a container drops the value; a nil release
// falls back to Releaser, and to a no-op when data is not a Releaser.
// Complexity: O(1).
func Own(data any, release ReleaseFunc) Value {
	if release == nil {
		if r, ok := data.(Releaser); ok {
			release = func(any) { r.Release() }
		}
	}

	return Value{data: data, release: release, owned: true}
}

// Data returns the wrapped payload (nil for the zero Value).
func (v Value) Data() any {
	return v.data
}

// Owned reports whether the holder of this Value is responsible for releasing it.
func (v Value) Owned() bool {
	return v.owned
}

// Release disposes of the payload if the Value is owned.
// Borrowed values are left untouched.
//
// Containers call Release on entries they drop. Callers call it after an
// ownership transfer back to them (stack.Pop) once they are done with the
// payload. Calling it twice on copies of the same Value runs the hook twice.
func (v Value) Release() {
	if !v.owned || v.release == nil {
		return
	}
	v.release(v.data)
}
