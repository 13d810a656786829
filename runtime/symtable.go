package runtime

import (
	"fmt"
	"sort"
)

// Symbol table for variables and functions. Symbol tables are attached to
// memory frames.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with parsers and
// grammars: Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used during
// runtime (of the script).
//
type Tag struct {
	name    string
	Content ContextType // a Value or a Function
}

// NewTag creates a new tag, holding Null.
func NewTag(nm string) *Tag {
	return &Tag{name: nm, Content: Null{}}
}

// WithContent sets the initial content of a tag. Use as
//
//    tag := NewTag("myTag").WithContent(Number(1))
//
func (s *Tag) WithContent(ct ContextType) *Tag {
	s.Content = ct
	return s
}

// String is a debug Stringer for symbols.
func (s *Tag) String() string {
	switch c := s.Content.(type) {
	case Value:
		return fmt.Sprintf("<tag '%s'=%s>", s.name, Inspect(c))
	case Function:
		return fmt.Sprintf("<tag '%s':function/%d>", s.name, len(c.Decl.Params))
	}
	return fmt.Sprintf("<tag '%s'>", s.name)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// Value returns the content of a tag if it is a value.
func (s *Tag) Value() (Value, bool) {
	v, ok := s.Content.(Value)
	return v, ok
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Creates non-existent tags on the fly.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created symbol.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}
