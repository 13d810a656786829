package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/nasl/builtin"
	"github.com/npillmayer/nasl/config"
	"github.com/npillmayer/nasl/interpreter"
	"github.com/npillmayer/nasl/runtime"
	"github.com/npillmayer/nasl/syntax"
)

// traceKeys are the tracers of all packages, set to the level of -trace.
var traceKeys = []string{"nasl.cli", "nasl.syntax", "nasl.runtime", "nasl.interpreter", "nasl.builtin", "nasl.script"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	cfgfile := flag.String("config", "", "Configuration file (YAML)")
	target := flag.String("target", "", "Target host")
	inclpath := flag.String("include-path", "", "Directory for include()")
	showAST := flag.Bool("ast", false, "Print statement trees instead of evaluating")
	code := flag.String("e", "", "Run code given as argument")
	functions := flag.Bool("functions", false, "List the built-in functions and exit")
	flag.Parse()
	if *functions {
		listFunctions(os.Stdout)
		return
	}
	//
	cfg := config.Default()
	if *cfgfile != "" {
		var err error
		if cfg, err = config.Load(*cfgfile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
	}
	overrideConfig(cfg, *tlevel, *target, *inclpath)
	setTraceLevel(traceLevel(cfg.Trace))
	tracer().Infof("Trace level is %s", cfg.Trace)
	//
	ctx := runtime.NewContext(cfg.Target,
		runtime.WithFunctions(builtin.Default()),
		runtime.WithLoader(runtime.FSLoader{Root: cfg.IncludePath}),
		runtime.WithPreferences(cfg.Preferences()),
		runtime.WithResolveTimeout(cfg.ResolveTimeout),
	)
	tracer().Debugf("run %s against target %q", ctx.RunID(), cfg.Target)
	intp := &Intp{
		reg:     runtime.NewRegister(),
		ctx:     ctx,
		showAST: *showAST,
		tty:     isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	switch {
	case *code != "":
		os.Exit(intp.Run(*code))
	case flag.NArg() > 0:
		status := 0
		for _, name := range flag.Args() {
			data, err := ioutil.ReadFile(name)
			if err != nil {
				pterm.Error.Println(err.Error())
				os.Exit(3)
			}
			if status = intp.Run(string(data)); intp.exited {
				break
			}
		}
		os.Exit(status)
	}
	intp.REPL()
}

// listFunctions prints the names of the built-in functions, one table per
// line.
func listFunctions(w io.Writer) {
	tables := []struct {
		title string
		table builtin.Table
	}{
		{"host", builtin.Hostname()},
		{"core", builtin.Core()},
		{"string", builtin.Strings()},
	}
	for _, t := range tables {
		fmt.Fprintf(w, "%-7s %s\n", t.title+":", strings.Join(t.table.Names(), " "))
	}
}

func overrideConfig(cfg *config.Config, tlevel, target, inclpath string) {
	if tlevel != "" {
		cfg.Trace = tlevel
	}
	if target != "" {
		cfg.Target = target
	}
	if inclpath != "" {
		cfg.IncludePath = inclpath
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp runs scripts against a single register, i.e. variables survive from
// one script to the next.
type Intp struct {
	reg     *runtime.Register
	ctx     *runtime.Context
	repl    *readline.Instance
	showAST bool
	tty     bool
	exited  bool
}

// Run runs a script and reports errors. It returns the exit status of the
// script: the argument of exit(), or 1 if any statement failed.
func (intp *Intp) Run(code string) int {
	if intp.showAST {
		return intp.printTrees(code)
	}
	status := 0
	results := interpreter.Run(code, intp.reg, intp.ctx)
	for r, ok := results.Next(); ok; r, ok = results.Next() {
		if r.Err != nil {
			intp.printError(r.Err, code)
			status = 1
			continue
		}
		if r.IsExit() {
			intp.exited = true
			return int(r.Value.(runtime.Exit))
		}
		if intp.repl != nil {
			intp.printResult(r)
		}
	}
	return status
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	repl, err := readline.New("nasl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to NASL")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
			line += ";"
		}
		if intp.Run(line); intp.exited {
			break
		}
	}
	println("Good bye!")
}

func (intp *Intp) printResult(r interpreter.Result) {
	if r.Value == nil {
		return
	}
	if _, isNull := r.Value.(runtime.Null); isNull {
		return
	}
	if intp.tty {
		pterm.Info.Println(runtime.Inspect(r.Value))
		return
	}
	fmt.Println(runtime.Inspect(r.Value))
}

func (intp *Intp) printError(err error, code string) {
	msg := fmt.Sprintf("%s error: %v", interpreter.Classify(err), err)
	switch interpreter.Classify(err) {
	case interpreter.LexError, interpreter.SyntaxError:
		msg = syntax.Snippet(err, code)
	}
	if intp.tty {
		pterm.Error.Println(msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// --- Statement trees -------------------------------------------------------

func (intp *Intp) printTrees(code string) int {
	status := 0
	parser := syntax.Parse(code)
	for {
		stmt, err := parser.Next()
		if err != nil {
			if err == io.EOF {
				return status
			}
			intp.printError(err, code)
			status = 1
			if interpreter.Classify(err) == interpreter.LexError {
				return status
			}
			continue
		}
		ll := leveledStatement(stmt)
		if !intp.tty {
			for _, item := range ll {
				fmt.Printf("%s%s\n", strings.Repeat("  ", item.Level), item.Text)
			}
			continue
		}
		pterm.Println(stmt.String())
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	}
}

func leveledStatement(stmt syntax.Statement) pterm.LeveledList {
	ll := pterm.LeveledList{}
	syntax.Walk(stmt, func(s syntax.Statement, depth int) bool {
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: label(s)})
		return true
	})
	return ll
}

// label is the text of a tree node. Leaves print as themselves.
func label(stmt syntax.Statement) string {
	if len(stmt.Children()) == 0 {
		return stmt.String()
	}
	switch s := stmt.(type) {
	case *syntax.Operator:
		return s.Category.String()
	case *syntax.Assign:
		return fmt.Sprintf("%s (%s)", s.Category, s.Order)
	case *syntax.Call:
		return s.Name.Lexeme + "()"
	case *syntax.NamedArg:
		return s.Name.Lexeme + ":"
	case *syntax.Array:
		return s.Token.Lexeme + "[]"
	case *syntax.ArrayLiteral:
		return "[]"
	case *syntax.Block:
		return "{}"
	case *syntax.If:
		return "if"
	case *syntax.For:
		return "for"
	case *syntax.ForEach:
		return "foreach " + s.Variable.Lexeme
	case *syntax.While:
		return "while"
	case *syntax.Repeat:
		return "repeat"
	case *syntax.FunctionDecl:
		return "function " + s.Name.Lexeme
	case *syntax.Declare:
		return s.Keyword.String()
	case *syntax.Return:
		return "return"
	case *syntax.Include:
		return "include"
	case *syntax.Exit:
		return "exit"
	}
	return stmt.String()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
