package syntax

import (
	"fmt"
	"strings"
)

// Kind is the discriminant of a statement node.
type Kind int8

// Statement kinds.
const (
	PrimitiveKind Kind = iota
	VariableKind
	ArrayKind
	OperatorKind
	AssignKind
	NoOpKind
	CallKind
	NamedArgKind
	ArrayLiteralKind
	BlockKind
	IfKind
	ForKind
	ForEachKind
	WhileKind
	RepeatKind
	FunctionDeclKind
	DeclareKind
	ReturnKind
	IncludeKind
	ExitKind
	JumpKind
)

// Statement is a node of the statement tree. The set of implementations is
// closed; the interpreter switches over the concrete types.
//
// Statement trees are owned top-down: no node is shared between parents.
type Statement interface {
	Kind() Kind
	Children() []Statement
	String() string
	statement()
}

// AssignOrder tells wether an assignment yields its new or its old value.
type AssignOrder int8

// Assignment orders.
const (
	AssignReturn AssignOrder = iota // assign, then return the new value (a = 1, ++a)
	ReturnAssign                    // return the old value, then assign (a++)
)

func (o AssignOrder) String() string {
	if o == ReturnAssign {
		return "ReturnAssign"
	}
	return "AssignReturn"
}

// --- Expressions -----------------------------------------------------------

// Primitive carries a literal: number, string, IPv4 address or one of the
// keywords TRUE, FALSE, NULL.
type Primitive struct {
	Token Token
}

// Variable references a variable by name.
type Variable struct {
	Token Token
}

// Array is an indexed variable access. Index is nil for references to the
// whole array.
type Array struct {
	Token Token
	Index Statement
}

// Operator applies a unary (1 operand) or binary (2 operands) operator.
type Operator struct {
	Category Category
	Operands []Statement
}

// Assign is an assignment. Target is either a *Variable or an *Array.
// Increments and decrements have a NoOp as their value; the category implies
// adding or subtracting one.
type Assign struct {
	Category Category
	Order    AssignOrder
	Target   Statement
	Value    Statement
}

// NoOp is an empty statement, a terminator or a comment. Token is nil for
// synthesized no-ops.
type NoOp struct {
	Token *Token
}

// Call calls a function by name.
type Call struct {
	Name Token
	Args []Statement
}

// NamedArg is a call argument of the form name: value.
type NamedArg struct {
	Name  Token
	Value Statement
}

// ArrayLiteral is a list of values in brackets: [1, "a", x].
type ArrayLiteral struct {
	Token    Token
	Elements []Statement
}

// --- Keyword forms ---------------------------------------------------------

// Block is a sequence of statements in curly brackets.
type Block struct {
	Statements []Statement
}

// If is a conditional. Else is nil if there is no else branch.
type If struct {
	Condition Statement
	Then      Statement
	Else      Statement
}

// For is a C-style loop. Init, Condition and Update may be no-ops.
type For struct {
	Init      Statement
	Condition Statement
	Update    Statement
	Body      Statement
}

// ForEach iterates over the elements of an array.
type ForEach struct {
	Variable Token
	Iterable Statement
	Body     Statement
}

// While is a head-controlled loop.
type While struct {
	Condition Statement
	Body      Statement
}

// Repeat is a foot-controlled loop, running until Condition becomes true.
type Repeat struct {
	Body      Statement
	Condition Statement
}

// FunctionDecl declares a script function.
type FunctionDecl struct {
	Name   Token
	Params []Token
	Body   Statement
}

// Declare is a local_var or global_var declaration. Targets are variables or
// assignments to variables.
type Declare struct {
	Keyword Keyword
	Targets []Statement
}

// Return leaves a function. Value is nil for a bare return.
type Return struct {
	Value Statement
}

// Include evaluates another script in the current scope.
type Include struct {
	Path Statement
}

// Exit terminates the script. Code is nil for exit().
type Exit struct {
	Code Statement
}

// Jump is a break or continue.
type Jump struct {
	Keyword Keyword
}

// --- Kind() ----------------------------------------------------------------

func (*Primitive) Kind() Kind    { return PrimitiveKind }
func (*Variable) Kind() Kind     { return VariableKind }
func (*Array) Kind() Kind        { return ArrayKind }
func (*Operator) Kind() Kind     { return OperatorKind }
func (*Assign) Kind() Kind       { return AssignKind }
func (*NoOp) Kind() Kind         { return NoOpKind }
func (*Call) Kind() Kind         { return CallKind }
func (*NamedArg) Kind() Kind     { return NamedArgKind }
func (*ArrayLiteral) Kind() Kind { return ArrayLiteralKind }
func (*Block) Kind() Kind        { return BlockKind }
func (*If) Kind() Kind           { return IfKind }
func (*For) Kind() Kind          { return ForKind }
func (*ForEach) Kind() Kind      { return ForEachKind }
func (*While) Kind() Kind        { return WhileKind }
func (*Repeat) Kind() Kind       { return RepeatKind }
func (*FunctionDecl) Kind() Kind { return FunctionDeclKind }
func (*Declare) Kind() Kind      { return DeclareKind }
func (*Return) Kind() Kind       { return ReturnKind }
func (*Include) Kind() Kind      { return IncludeKind }
func (*Exit) Kind() Kind         { return ExitKind }
func (*Jump) Kind() Kind         { return JumpKind }

func (*Primitive) statement()    {}
func (*Variable) statement()     {}
func (*Array) statement()        {}
func (*Operator) statement()     {}
func (*Assign) statement()       {}
func (*NoOp) statement()         {}
func (*Call) statement()         {}
func (*NamedArg) statement()     {}
func (*ArrayLiteral) statement() {}
func (*Block) statement()        {}
func (*If) statement()           {}
func (*For) statement()          {}
func (*ForEach) statement()      {}
func (*While) statement()        {}
func (*Repeat) statement()       {}
func (*FunctionDecl) statement() {}
func (*Declare) statement()      {}
func (*Return) statement()       {}
func (*Include) statement()      {}
func (*Exit) statement()         {}
func (*Jump) statement()         {}

// --- Children() ------------------------------------------------------------

// nonNil drops absent optional children.
func nonNil(stmts ...Statement) []Statement {
	r := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		if s != nil {
			r = append(r, s)
		}
	}
	return r
}

func (s *Primitive) Children() []Statement    { return nil }
func (s *Variable) Children() []Statement     { return nil }
func (s *Array) Children() []Statement        { return nonNil(s.Index) }
func (s *Operator) Children() []Statement     { return s.Operands }
func (s *Assign) Children() []Statement       { return nonNil(s.Target, s.Value) }
func (s *NoOp) Children() []Statement         { return nil }
func (s *Call) Children() []Statement         { return s.Args }
func (s *NamedArg) Children() []Statement     { return nonNil(s.Value) }
func (s *ArrayLiteral) Children() []Statement { return s.Elements }
func (s *Block) Children() []Statement        { return s.Statements }
func (s *If) Children() []Statement           { return nonNil(s.Condition, s.Then, s.Else) }
func (s *For) Children() []Statement          { return nonNil(s.Init, s.Condition, s.Update, s.Body) }
func (s *ForEach) Children() []Statement      { return nonNil(s.Iterable, s.Body) }
func (s *While) Children() []Statement        { return nonNil(s.Condition, s.Body) }
func (s *Repeat) Children() []Statement       { return nonNil(s.Body, s.Condition) }
func (s *FunctionDecl) Children() []Statement { return nonNil(s.Body) }
func (s *Declare) Children() []Statement      { return s.Targets }
func (s *Return) Children() []Statement       { return nonNil(s.Value) }
func (s *Include) Children() []Statement      { return nonNil(s.Path) }
func (s *Exit) Children() []Statement         { return nonNil(s.Code) }
func (s *Jump) Children() []Statement         { return nil }

// --- String() --------------------------------------------------------------

// Statements print as s-expressions, e.g. "(+ 1 (* (++ a) 1))".

func (s *Primitive) String() string {
	if s.Token.Category == String {
		if s.Token.Quoting == Quotable {
			return "'" + s.Token.Lexeme + "'"
		}
		return `"` + s.Token.Lexeme + `"`
	}
	return s.Token.Lexeme
}

func (s *Variable) String() string { return s.Token.Lexeme }

func (s *Array) String() string {
	if s.Index == nil {
		return s.Token.Lexeme + "[]"
	}
	return fmt.Sprintf("%s[%s]", s.Token.Lexeme, s.Index)
}

func (s *Operator) String() string {
	return "(" + s.Category.String() + " " + join(s.Operands, " ") + ")"
}

func (s *Assign) String() string {
	if _, ok := s.Value.(*NoOp); ok && (s.Category == PlusPlus || s.Category == MinusMinus) {
		if s.Order == ReturnAssign {
			return fmt.Sprintf("(%s %s)", s.Target, s.Category)
		}
		return fmt.Sprintf("(%s %s)", s.Category, s.Target)
	}
	return fmt.Sprintf("(%s %s %s)", s.Category, s.Target, s.Value)
}

func (s *NoOp) String() string {
	if s.Token == nil {
		return "<noop>"
	}
	if s.Token.Category == Comment {
		return s.Token.Lexeme
	}
	return s.Token.Category.String()
}

func (s *Call) String() string {
	if len(s.Args) == 0 {
		return "(" + s.Name.Lexeme + ")"
	}
	return "(" + s.Name.Lexeme + " " + join(s.Args, " ") + ")"
}

func (s *NamedArg) String() string { return s.Name.Lexeme + ":" + s.Value.String() }

func (s *ArrayLiteral) String() string { return "[" + join(s.Elements, ", ") + "]" }

func (s *Block) String() string {
	if len(s.Statements) == 0 {
		return "{}"
	}
	return "{ " + join(s.Statements, " ") + " }"
}

func (s *If) String() string {
	if s.Else == nil {
		return fmt.Sprintf("(if %s %s)", s.Condition, s.Then)
	}
	return fmt.Sprintf("(if %s %s %s)", s.Condition, s.Then, s.Else)
}

func (s *For) String() string {
	return fmt.Sprintf("(for %s %s %s %s)", s.Init, s.Condition, s.Update, s.Body)
}

func (s *ForEach) String() string {
	return fmt.Sprintf("(foreach %s %s %s)", s.Variable.Lexeme, s.Iterable, s.Body)
}

func (s *While) String() string { return fmt.Sprintf("(while %s %s)", s.Condition, s.Body) }

func (s *Repeat) String() string { return fmt.Sprintf("(repeat %s %s)", s.Body, s.Condition) }

func (s *FunctionDecl) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("(function %s (%s) %s)", s.Name.Lexeme, strings.Join(params, " "), s.Body)
}

func (s *Declare) String() string {
	return "(" + s.Keyword.String() + " " + join(s.Targets, " ") + ")"
}

func (s *Return) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", s.Value)
}

func (s *Include) String() string { return fmt.Sprintf("(include %s)", s.Path) }

func (s *Exit) String() string {
	if s.Code == nil {
		return "(exit)"
	}
	return fmt.Sprintf("(exit %s)", s.Code)
}

func (s *Jump) String() string { return "(" + s.Keyword.String() + ")" }

func join(stmts []Statement, sep string) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}

// Walk visits a statement tree depth-first, pre-order. If visit returns
// false, the children of the node are skipped.
func Walk(stmt Statement, visit func(Statement, int) bool) {
	walk(stmt, 0, visit)
}

func walk(stmt Statement, depth int, visit func(Statement, int) bool) {
	if stmt == nil || !visit(stmt, depth) {
		return
	}
	for _, ch := range stmt.Children() {
		walk(ch, depth+1, visit)
	}
}
