package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxHeight is the call stack height limit applied to new root
// environments.  Recursion deeper than the limit fails with a stack-overflow
// error rather than exhausting the host call stack.
const DefaultMaxHeight = 25000

// CallStack is a function call stack.  Every function application pushes one
// frame; environments in one chain share a single stack.
type CallStack struct {
	Frames    []CallFrame
	MaxHeight int // calls fail beyond this height (no limit when <= 0)
}

// CallFrame is one frame in the CallStack.
type CallFrame struct {
	Name string
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Height returns the current stack height.
func (s *CallStack) Height() int {
	return len(s.Frames)
}

// Push adds a frame for the named function.  Push fails with a
// stack-overflow error when the stack has reached its maximum height.
func (s *CallStack) Push(name string) *LVal {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return ErrorConditionf(StackOverflow, "maximum call stack height exceeded: %d", s.MaxHeight)
	}
	s.Frames = append(s.Frames, CallFrame{Name: name})
	return Nil()
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s.
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	for i := len(s.Frames) - 1; i >= 0; i-- {
		_n, err := fmt.Fprintf(w, "  height %d: %s\n", i, s.Frames[i].Name)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
