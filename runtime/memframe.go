package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// This module implements a stack of memory frames.
// Memory frames are used by the interpreter to allocate local storage
// for function calls.

// FrameKind tells what a memory frame has been pushed for.
type FrameKind int8

// Kinds of memory frames.
const (
	GlobalFrame   FrameKind = iota
	FunctionFrame           // call of a script function
	BuiltinFrame            // call of a built-in function
)

// MemoryFrame is a memory frame, representing a piece of memory for a call.
type MemoryFrame struct {
	Name        string
	Kind        FrameKind
	SymbolTable *SymbolTable
}

// NewMemoryFrame creates a new memory frame.
func NewMemoryFrame(nm string, kind FrameKind) *MemoryFrame {
	return &MemoryFrame{
		Name:        nm,
		Kind:        kind,
		SymbolTable: NewSymbolTable(),
	}
}

func (mf *MemoryFrame) String() string {
	return fmt.Sprintf("<mem %s #%d>", mf.Name, mf.SymbolTable.Size())
}

// IsRoot is a predicate: Is this a root frame?
func (mf *MemoryFrame) IsRoot() bool {
	return mf.Kind == GlobalFrame
}

// ---------------------------------------------------------------------------

// MemoryFrameStack is a (call-)stack of memory frames.
type MemoryFrameStack struct {
	frames *arraylist.List
}

// NewMemoryFrameStack creates a stack holding a global frame.
func NewMemoryFrameStack() *MemoryFrameStack {
	mfst := &MemoryFrameStack{frames: arraylist.New()}
	mfst.frames.Add(NewMemoryFrame("global", GlobalFrame))
	return mfst
}

// Size returns the number of frames, including the global frame.
func (mfst *MemoryFrameStack) Size() int {
	return mfst.frames.Size()
}

// Frame returns the frame at position i, with 0 being the global frame.
func (mfst *MemoryFrameStack) Frame(i int) *MemoryFrame {
	f, ok := mfst.frames.Get(i)
	if !ok {
		panic(fmt.Sprintf("attempt to access memory frame %d of %d", i, mfst.frames.Size()))
	}
	return f.(*MemoryFrame)
}

// Current gets the current memory frame of a stack (TOS).
func (mfst *MemoryFrameStack) Current() *MemoryFrame {
	return mfst.Frame(mfst.frames.Size() - 1)
}

// Globals gets the outermost memory frame, containing global symbols.
func (mfst *MemoryFrameStack) Globals() *MemoryFrame {
	return mfst.Frame(0)
}

// PushNewMemoryFrame pushes a new memory frame as TOS.
func (mfst *MemoryFrameStack) PushNewMemoryFrame(nm string, kind FrameKind) *MemoryFrame {
	newmf := NewMemoryFrame(nm, kind)
	mfst.frames.Add(newmf)
	tracer().P("mem", newmf.Name).Debugf("pushing new memory frame")
	return newmf
}

// PopMemoryFrame pops the top-most memory frame. Returns the popped frame.
// The global frame cannot be popped.
func (mfst *MemoryFrameStack) PopMemoryFrame() *MemoryFrame {
	mf := mfst.Current()
	if mf.IsRoot() {
		panic("attempt to pop global memory frame")
	}
	tracer().Debugf("popping memory frame [%s]", mf.Name)
	mfst.frames.Remove(mfst.frames.Size() - 1)
	return mf
}

// FindTag finds the top-most memory frame defining tagname, starting at TOS.
// Frames of calls are opaque: the search stops at the first non-global frame
// and continues with the global frame.
func (mfst *MemoryFrameStack) FindTag(tagname string) (*Tag, *MemoryFrame) {
	for i := mfst.frames.Size() - 1; i >= 0; i-- {
		mf := mfst.Frame(i)
		if tag := mf.SymbolTable.ResolveTag(tagname); tag != nil {
			return tag, mf
		}
		if !mf.IsRoot() {
			i = 1 // continue with globals
		}
	}
	return nil, nil
}
