package stack_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mcore/core"
	"github.com/katalvlaran/mcore/stack"
)

const (
	pushes32 = 32
	pushes10 = 10
	bigSize  = 1_000_000
)

// StackSuite exercises push/pop/peek bookkeeping and ownership handling.
type StackSuite struct {
	suite.Suite
	s *stack.Stack
}

func (ss *StackSuite) SetupTest() {
	ss.s = stack.New()
}

func (ss *StackSuite) TearDownTest() {
	ss.s.Free()
}

// TestInitAndFree verifies a new stack is empty and Free invalidates it.
func (ss *StackSuite) TestInitAndFree() {
	require.NotNil(ss.T(), ss.s)
	require.True(ss.T(), ss.s.IsEmpty())
	require.Equal(ss.T(), 0, ss.s.Size())

	ss.s.Free()
	require.True(ss.T(), ss.s.IsEmpty())
	require.ErrorIs(ss.T(), ss.s.Push(core.Borrow(1)), stack.ErrStackFreed)
}

// TestPeekTracksLatestPush checks Peek after every push and Size along the way.
func (ss *StackSuite) TestPeekTracksLatestPush() {
	for i := 0; i < pushes32; i++ {
		v := fmt.Sprintf("Stack push: %d", i)
		require.NoError(ss.T(), ss.s.Push(core.Borrow(v)))

		top, ok := ss.s.Peek()
		require.True(ss.T(), ok)
		require.Equal(ss.T(), v, top.Data())
		require.Equal(ss.T(), i+1, ss.s.Size())
	}
}

// TestPopIsLIFO pops values in exact reverse push order.
func (ss *StackSuite) TestPopIsLIFO() {
	for i := 0; i < pushes32; i++ {
		require.NoError(ss.T(), ss.s.Push(core.Borrow(i)))
	}
	for want := pushes32 - 1; want >= 0; want-- {
		v, ok := ss.s.Pop()
		require.True(ss.T(), ok)
		require.Equal(ss.T(), want, v.Data())
		require.Equal(ss.T(), want, ss.s.Size())
	}
	require.True(ss.T(), ss.s.IsEmpty())
}

// TestPeekAndPop interleaves one push, one peek and one pop per round.
func (ss *StackSuite) TestPeekAndPop() {
	pushes := 0
	for i := 0; i < pushes32; i++ {
		v := fmt.Sprintf("Stack push: %d", i)
		if ss.s.Push(core.Borrow(v)) == nil {
			pushes++
		}
		top, _ := ss.s.Peek()
		require.Equal(ss.T(), v, top.Data())
		popped, ok := ss.s.Pop()
		require.True(ss.T(), ok)
		require.Equal(ss.T(), v, popped.Data())
	}
	require.Equal(ss.T(), pushes32, pushes)
	require.True(ss.T(), ss.s.IsEmpty())
}

// TestIsEmpty matches IsEmpty against Size through a fill and drain cycle.
func (ss *StackSuite) TestIsEmpty() {
	require.True(ss.T(), ss.s.IsEmpty())
	for i := 0; i < pushes10; i++ {
		require.NoError(ss.T(), ss.s.Push(core.Borrow(i)))
		require.False(ss.T(), ss.s.IsEmpty())
	}
	require.Equal(ss.T(), pushes10, ss.s.Size())
	for i := 0; i < pushes10; i++ {
		_, ok := ss.s.Pop()
		require.True(ss.T(), ok)
		require.Equal(ss.T(), ss.s.Size() == 0, ss.s.IsEmpty())
	}
	require.True(ss.T(), ss.s.IsEmpty())
}

// TestEmptyPopPeek ensures pop/peek on an empty stack have no side effect.
func (ss *StackSuite) TestEmptyPopPeek() {
	v, ok := ss.s.Pop()
	require.False(ss.T(), ok)
	require.Nil(ss.T(), v.Data())
	v, ok = ss.s.Peek()
	require.False(ss.T(), ok)
	require.Nil(ss.T(), v.Data())
	require.Equal(ss.T(), 0, ss.s.Size())
}

// TestPopTransfersOwnership checks that Pop never releases and Free releases
// only what is still stacked.
func (ss *StackSuite) TestPopTransfersOwnership() {
	released := map[any]int{}
	hook := func(d any) { released[d]++ }

	for i := 0; i < pushes10; i++ {
		require.NoError(ss.T(), ss.s.Push(core.Own(i, hook)))
	}
	popped, ok := ss.s.Pop()
	require.True(ss.T(), ok)
	require.True(ss.T(), popped.Owned())
	require.Empty(ss.T(), released, "pop must not release the payload")

	ss.s.Free()
	require.Len(ss.T(), released, pushes10-1)
	require.NotContains(ss.T(), released, popped.Data())
	for _, n := range released {
		require.Equal(ss.T(), 1, n)
	}

	// the caller disposes of what it popped
	popped.Release()
	require.Equal(ss.T(), 1, released[popped.Data()])
}

// TestBigSize pushes one million borrowed values, then drains them.
func (ss *StackSuite) TestBigSize() {
	if testing.Short() {
		ss.T().Skip("skipping 1M push scenario in short mode")
	}
	value := "Stack push"
	for i := 0; i < bigSize; i++ {
		require.NoError(ss.T(), ss.s.Push(core.Borrow(value)))
	}
	require.Equal(ss.T(), bigSize, ss.s.Size())

	for !ss.s.IsEmpty() {
		ss.s.Pop()
	}
	require.Equal(ss.T(), 0, ss.s.Size())
	require.True(ss.T(), ss.s.IsEmpty())

	ss.s.Free()
	require.True(ss.T(), ss.s.IsEmpty())
	require.ErrorIs(ss.T(), ss.s.Push(core.Borrow(value)), stack.ErrStackFreed)
}

func TestStackSuite(t *testing.T) {
	suite.Run(t, new(StackSuite))
}

func TestNilStack(t *testing.T) {
	var s *stack.Stack
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Size())
	require.ErrorIs(t, s.Push(core.Borrow(1)), stack.ErrNilStack)
	_, ok := s.Pop()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
	s.Free()
}
