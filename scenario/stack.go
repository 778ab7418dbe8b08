package scenario

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/core"
	"github.com/katalvlaran/mcore/report"
	"github.com/katalvlaran/mcore/stack"
)

const stackRounds = 10

func stackCases() []Case {
	return []Case{
		{Name: "InitAndFree", Run: stackInitAndFree},
		{Name: "BigSize", Run: stackBigSize},
		{Name: "DynamicInsertion", Run: stackDynamicInsertion},
		{Name: "PeekAndPop", Run: stackPeekAndPop},
		{Name: "IsEmpty", Run: stackIsEmpty},
	}
}

func stackInitAndFree(r *report.Reporter, _ *config.Config) {
	s := stack.New()
	r.Check("InitAndFree: New", assert.NotNil(r, s))
	r.Check("InitAndFree: empty after New", assert.True(r, s.IsEmpty()))
	s.Free()
	r.Check("InitAndFree: freed stack rejects push",
		assert.ErrorIs(r, s.Push(core.Borrow(nil)), stack.ErrStackFreed))
}

func stackBigSize(r *report.Reporter, cfg *config.Config) {
	n := cfg.Stack.BigSize
	s := stack.New()
	value := "Stack push"

	pushes := 0
	for i := 0; i < n; i++ {
		if s.Push(core.Borrow(value)) == nil {
			pushes++
		}
	}
	r.Check("BigSize: successful pushes", assert.Equal(r, n, pushes))
	r.Check("BigSize: size", assert.Equal(r, n, s.Size()))

	for !s.IsEmpty() {
		s.Pop()
	}
	r.Check("BigSize: size after draining", assert.Zero(r, s.Size()))
	r.Check("BigSize: empty after draining", assert.True(r, s.IsEmpty()))
	s.Free()
	r.Check("BigSize: free on empty stack", assert.True(r, s.IsEmpty()))
}

func stackDynamicInsertion(r *report.Reporter, cfg *config.Config) {
	n := cfg.Scenario.DynamicCount
	s := stack.New()

	released := 0
	pushes := 0
	for i := 0; i < n; i++ {
		v := fmt.Sprintf("Stack push: %d", i)
		if s.Push(core.Own(v, func(any) { released++ })) == nil {
			pushes++
		}
	}
	r.Check("DynamicInsertion: successful pushes", assert.Equal(r, n, pushes))
	s.Free()
	r.Check("DynamicInsertion: every owned value released on free", assert.Equal(r, n, released))
}

func stackPeekAndPop(r *report.Reporter, cfg *config.Config) {
	n := cfg.Scenario.DynamicCount
	s := stack.New()
	defer s.Free()

	ok := true
	for i := 0; i < n; i++ {
		v := fmt.Sprintf("Stack push: %d", i)
		_ = s.Push(core.Borrow(v))
		top, _ := s.Peek()
		ok = assert.Equal(r, v, top.Data()) && ok
		popped, _ := s.Pop()
		ok = assert.Equal(r, v, popped.Data()) && ok
	}
	r.Check("PeekAndPop: peek and pop return the latest push", ok)
	r.Check("PeekAndPop: empty at the end", assert.True(r, s.IsEmpty()))

	// LIFO over a full fill
	for i := 0; i < n; i++ {
		_ = s.Push(core.Borrow(i))
	}
	ok = true
	for want := n - 1; want >= 0; want-- {
		v, _ := s.Pop()
		ok = assert.Equal(r, want, v.Data()) && ok
	}
	r.Check("PeekAndPop: pops in reverse push order", ok)
}

func stackIsEmpty(r *report.Reporter, _ *config.Config) {
	s := stack.New()
	defer s.Free()

	r.Check("IsEmpty: true after New", assert.True(r, s.IsEmpty()))
	for i := 0; i < stackRounds; i++ {
		_ = s.Push(core.Borrow(i))
	}
	r.Check("IsEmpty: false after pushes", assert.False(r, s.IsEmpty()))
	r.Check("IsEmpty: size after pushes", assert.Equal(r, stackRounds, s.Size()))

	ok := true
	for i := 0; i < stackRounds; i++ {
		s.Pop()
		ok = assert.Equal(r, s.Size() == 0, s.IsEmpty()) && ok
	}
	r.Check("IsEmpty: tracks size while draining", ok)
	r.Check("IsEmpty: true after last pop", assert.True(r, s.IsEmpty()))
}
