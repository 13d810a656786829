package runtime

import (
	"github.com/npillmayer/nasl/syntax"
)

// Register holds the variables and functions of a script execution. A
// register belongs to exactly one execution and must not be shared between
// goroutines.
type Register struct {
	stack *MemoryFrameStack
}

// NewRegister creates a register with an empty global frame.
func NewRegister() *Register {
	return &Register{stack: NewMemoryFrameStack()}
}

// NewRegisterWith creates a register with initial global values.
func NewRegisterWith(globals map[string]Value) *Register {
	r := NewRegister()
	for name, v := range globals {
		r.DeclareGlobal(name, v)
	}
	return r
}

// Depth returns the number of call frames, excluding the global frame.
func (r *Register) Depth() int {
	return r.stack.Size() - 1
}

// Frames returns the underlying stack of memory frames.
func (r *Register) Frames() *MemoryFrameStack {
	return r.stack
}

// PushFrame enters a call. Callers must pair it with PopFrame on every exit
// path.
func (r *Register) PushFrame(name string, kind FrameKind) *MemoryFrame {
	return r.stack.PushNewMemoryFrame(name, kind)
}

// PopFrame leaves a call.
func (r *Register) PopFrame() {
	r.stack.PopMemoryFrame()
}

// Lookup finds the tag visible under name, innermost first.
func (r *Register) Lookup(name string) (*Tag, bool) {
	tag, _ := r.stack.FindTag(name)
	return tag, tag != nil
}

// Named returns the content visible under name.
func (r *Register) Named(name string) (ContextType, bool) {
	if tag, ok := r.Lookup(name); ok {
		return tag.Content, true
	}
	return nil, false
}

// Value returns the value of a variable. Names bound to functions do not
// count as variables.
func (r *Register) Value(name string) (Value, bool) {
	if tag, ok := r.Lookup(name); ok {
		return tag.Value()
	}
	return nil, false
}

// Function returns the script function declared under name.
func (r *Register) Function(name string) (*syntax.FunctionDecl, bool) {
	if tag := r.stack.Globals().SymbolTable.ResolveTag(name); tag != nil {
		if f, ok := tag.Content.(Function); ok {
			return f.Decl, true
		}
	}
	return nil, false
}

// Declare defines name in the top frame, shadowing outer definitions.
func (r *Register) Declare(name string, ct ContextType) *Tag {
	tag, _ := r.stack.Current().SymbolTable.DefineTag(name)
	tag.Content = ct
	return tag
}

// DeclareGlobal defines name in the global frame.
func (r *Register) DeclareGlobal(name string, ct ContextType) *Tag {
	tag, _ := r.stack.Globals().SymbolTable.DefineTag(name)
	tag.Content = ct
	return tag
}

// AssignOrDeclare implements the assignment policy of scripts: the variable
// visible under name is updated; if there is none, name is declared in the
// top frame. It returns the previous value, or Null.
func (r *Register) AssignOrDeclare(name string, v Value) Value {
	if tag, ok := r.Lookup(name); ok {
		old, isValue := tag.Value()
		tag.Content = v
		if !isValue {
			return Null{}
		}
		return old
	}
	r.Declare(name, v)
	return Null{}
}

// Positional returns the positional arguments of the current call.
func (r *Register) Positional() Array {
	if tag := r.stack.Current().SymbolTable.ResolveTag(AnonArgs); tag != nil {
		if a, ok := tag.Content.(Array); ok {
			return a
		}
	}
	return nil
}

// Argument returns a named argument of the current call. Arguments are
// defined in the top frame only.
func (r *Register) Argument(name string) (Value, bool) {
	if tag := r.stack.Current().SymbolTable.ResolveTag(name); tag != nil {
		return tag.Value()
	}
	return nil, false
}
