package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/nasl/syntax"
)

// ValueType is the dynamic type of a value.
type ValueType int8

// Value types.
const (
	NullType ValueType = iota
	StringType
	NumberType
	BooleanType
	ArrayType
	DictType
	ExitType
)

var typeNames = [...]string{"null", "string", "int", "bool", "array", "dict", "exit"}

func (t ValueType) String() string {
	return typeNames[t]
}

// ContextType is what a tag of a symbol table may hold: a value or a
// function declared by a script.
type ContextType interface {
	contextType()
}

// Function is a function declared by a script.
type Function struct {
	Decl *syntax.FunctionDecl
}

func (Function) contextType() {}

// Value is the result of evaluating a statement. The set of values is closed.
type Value interface {
	ContextType
	Type() ValueType
	String() string
}

// Null is the absent value.
type Null struct{}

// String is a string value.
type String string

// Number is an integer value.
type Number int64

// Boolean is a truth value.
type Boolean bool

// Array is an ordered list of values.
type Array []Value

// Exit signals the end of a script with an exit code.
type Exit int64

// Dict maps strings to values. Keys iterate in sorted order.
type Dict struct {
	entries *treemap.Map
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: treemap.NewWithStringComparator()}
}

func (Null) contextType()    {}
func (String) contextType()  {}
func (Number) contextType()  {}
func (Boolean) contextType() {}
func (Array) contextType()   {}
func (*Dict) contextType()   {}
func (Exit) contextType()    {}

func (Null) Type() ValueType    { return NullType }
func (String) Type() ValueType  { return StringType }
func (Number) Type() ValueType  { return NumberType }
func (Boolean) Type() ValueType { return BooleanType }
func (Array) Type() ValueType   { return ArrayType }
func (*Dict) Type() ValueType   { return DictType }
func (Exit) Type() ValueType    { return ExitType }

// String of Null is empty, as it is printed by display().
func (Null) String() string { return "" }

func (s String) String() string { return string(s) }

func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

func (b Boolean) String() string {
	if b {
		return "1"
	}
	return "0"
}

func (a Array) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = Inspect(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d *Dict) String() string {
	var parts []string
	d.Each(func(k string, v Value) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, Inspect(v)))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

func (e Exit) String() string { return fmt.Sprintf("exit(%d)", int64(e)) }

// Get returns the value stored for key.
func (d *Dict) Get(key string) (Value, bool) {
	v, found := d.entries.Get(key)
	if !found {
		return nil, false
	}
	return v.(Value), true
}

// Put stores a value for key.
func (d *Dict) Put(key string, v Value) {
	d.entries.Put(key, v)
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return d.entries.Size()
}

// Keys returns the keys in sorted order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.entries.Size())
	for _, k := range d.entries.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Values returns the values in the order of their keys.
func (d *Dict) Values() []Value {
	vals := make([]Value, 0, d.entries.Size())
	for _, v := range d.entries.Values() {
		vals = append(vals, v.(Value))
	}
	return vals
}

// Each calls f for every entry, in key order.
func (d *Dict) Each(f func(string, Value)) {
	it := d.entries.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(Value))
	}
}

// --- Operations on values --------------------------------------------------

// Truthy tells wether a value counts as true in a condition.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Boolean:
		return bool(x)
	case Number:
		return x != 0
	case String:
		return x != ""
	case Array, *Dict:
		return true
	}
	return false
}

// Equal compares values structurally.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Dict:
		y := b.(*Dict)
		if x.Len() != y.Len() {
			return false
		}
		equal := true
		x.Each(func(k string, v Value) {
			if w, ok := y.Get(k); !ok || !Equal(v, w) {
				equal = false
			}
		})
		return equal
	}
	return a == b
}

// Clone copies containers deeply. Scripts have value semantics for
// arrays and dictionaries.
func Clone(v Value) Value {
	switch x := v.(type) {
	case Array:
		c := make(Array, len(x))
		for i, e := range x {
			c[i] = Clone(e)
		}
		return c
	case *Dict:
		c := NewDict()
		x.Each(func(k string, e Value) {
			c.Put(k, Clone(e))
		})
		return c
	}
	return v
}

// AsNumber converts a value to a number, if it has a numeric reading.
// Null counts as 0, booleans as 0 or 1, strings if they parse as an integer.
func AsNumber(v Value) (int64, bool) {
	switch x := v.(type) {
	case Number:
		return int64(x), true
	case Boolean:
		if x {
			return 1, true
		}
		return 0, true
	case Null:
		return 0, true
	case String:
		n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 0, 64)
		return n, err == nil
	}
	return 0, false
}

// Inspect renders a value for diagnostics, with quoted strings and NULL
// made visible.
func Inspect(v Value) string {
	switch x := v.(type) {
	case nil, Null:
		return "NULL"
	case String:
		return strconv.Quote(string(x))
	case Boolean:
		if x {
			return "TRUE"
		}
		return "FALSE"
	}
	return v.String()
}
