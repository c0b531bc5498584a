package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cnf/structhash"
	"github.com/npillmayer/ffgram/ll"
	"github.com/npillmayer/ffgram/ll/reader"
	"github.com/pterm/pterm"
)

// sessionName is the name of grammars entered interactively.
const sessionName = "G"

var (
	errNoGrammar = errors.New("no productions entered yet")
	errLoadCycle = errors.New("file is already being loaded")
)

// Intp is our interpreter object. It collects productions and answers
// queries about FIRST- and FOLLOW-sets of the resulting grammar.
type Intp struct {
	format   reader.Format
	lines    []string                  // productions of the session
	cache    map[string]*ll.LLAnalysis // analyses by grammar fingerprint
	computed int                       // number of analyses actually computed
	loading  map[string]bool           // files currently being loaded
	repl     *readline.Instance
}

// NewIntp creates an interpreter for grammars in a given notation.
func NewIntp(format reader.Format) *Intp {
	return &Intp{
		format:  format,
		cache:   make(map[string]*ll.LLAnalysis),
		loading: make(map[string]bool),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates an input line, which is either a command (starting with
// ':') or a production. Eval returns true if the session should end.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		intp.lines = append(intp.lines, line)
		tracer().Debugf("production #%d: %s", len(intp.lines), line)
		return false, nil
	}
	args := strings.Fields(line)
	cmd, arg := args[0], ""
	if len(args) > 1 {
		arg = args[1]
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":clear":
		intp.lines = intp.lines[:0]
		pterm.Info.Println("grammar cleared")
	case ":format":
		f, err := reader.ParseFormat(arg)
		if err != nil {
			return false, err
		}
		intp.format = f
		pterm.Info.Printf("notation is %s\n", f)
	case ":load":
		if arg == "" {
			return false, fmt.Errorf("usage: :load file")
		}
		return false, intp.loadFile(arg)
	case ":html":
		if arg == "" {
			return false, fmt.Errorf("usage: :html file")
		}
		return false, intp.writeHTML(arg)
	case ":grammar":
		ga, err := intp.Analysis()
		if err != nil {
			return false, err
		}
		printGrammar(ga.Grammar())
	case ":first", ":follow":
		ga, err := intp.Analysis()
		if err != nil {
			return false, err
		}
		if arg == "" {
			if cmd == ":first" {
				printSetTable("FIRST", ga.FirstTable())
			} else {
				printSetTable("FOLLOW", ga.FollowTable())
			}
			return false, nil
		}
		set, err := intp.query(ga, cmd == ":first", arg)
		if err != nil {
			return false, err
		}
		pterm.Info.Printf("%s(%s) = %s\n", strings.ToUpper(cmd[1:]), arg, setString(set))
	case ":show":
		ga, err := intp.Analysis()
		if err != nil {
			return false, err
		}
		printAnalysis(ga)
	case ":help":
		printHelp()
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

// query returns FIRST(X) or FOLLOW(X) for a symbol named name.
func (intp *Intp) query(ga *ll.LLAnalysis, first bool, name string) ([]*ll.Symbol, error) {
	g := ga.Grammar()
	if N := g.NonTerminal(name); N != nil {
		if first {
			return ga.First(N), nil
		}
		return ga.Follow(N), nil
	}
	if a := g.Terminal(name); a != nil && first {
		return ga.First(a), nil
	}
	return nil, fmt.Errorf("grammar has no non-terminal %q", name)
}

// Analysis reads the session grammar and returns its analysis. An analysis
// is computed only if no analysis for an identical grammar is cached.
func (intp *Intp) Analysis() (*ll.LLAnalysis, error) {
	if len(intp.lines) == 0 {
		return nil, errNoGrammar
	}
	src := strings.Join(intp.lines, "\n")
	g, err := reader.Read(sessionName, strings.NewReader(src), intp.format)
	if err != nil {
		return nil, err
	}
	key, err := fingerprint(g)
	if err != nil {
		return nil, err
	}
	if ga, ok := intp.cache[key]; ok {
		tracer().Debugf("re-using analysis for grammar %s", key)
		return ga, nil
	}
	for _, N := range g.LeftRecursive() {
		pterm.Warning.Printf("%s is left recursive, grammar is not LL(1)\n", N.Name)
	}
	ga := ll.Analysis(g)
	intp.computed++
	intp.cache[key] = ga
	nf, nl := ga.Passes()
	tracer().Infof("analysed grammar %s: %d rules, %d+%d passes", key, g.Size(), nf, nl)
	return ga, nil
}

// loadFile evaluates the lines of a file. If a line fails, the session is
// restored to its state before the load.
func (intp *Intp) loadFile(filename string) error {
	path, err := filepath.Abs(filename)
	if err != nil {
		path = filepath.Clean(filename)
	}
	if intp.loading[path] {
		return fmt.Errorf("%w: %s", errLoadCycle, filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open grammar file: %w", err)
	}
	defer f.Close()
	intp.loading[path] = true
	defer delete(intp.loading, path)
	lines, format := append([]string(nil), intp.lines...), intp.format
	rollback := func(err error) error {
		intp.lines, intp.format = lines, format
		return err
	}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			return rollback(fmt.Errorf("%s:%d: %w", filename, lineno, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return rollback(fmt.Errorf("error while reading grammar file: %w", err))
	}
	tracer().Infof("loaded %d lines from %s", lineno, filename)
	return nil
}

func (intp *Intp) writeHTML(filename string) error {
	ga, err := intp.Analysis()
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = ll.TablesAsHTML(ga, f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	pterm.Info.Printf("tables written to %s\n", filename)
	return nil
}

// --- Fingerprints ----------------------------------------------------------

// grammarPrint is the hashable form of a grammar. Two grammars with equal
// rules, in equal order, have equal fingerprints, regardless of their name.
type grammarPrint struct {
	Rules []rulePrint
}

type rulePrint struct {
	LHS   string
	RHS   []string
	Kinds []int
}

func fingerprint(g *ll.Grammar) (string, error) {
	gp := grammarPrint{Rules: make([]rulePrint, 0, g.Size())}
	g.EachRule(func(r *ll.Rule) interface{} {
		rp := rulePrint{LHS: r.LHS.Name}
		for _, X := range r.RHS() {
			rp.RHS = append(rp.RHS, X.Name)
			rp.Kinds = append(rp.Kinds, int(X.Kind()))
		}
		gp.Rules = append(gp.Rules, rp)
		return nil
	})
	return structhash.Hash(gp, 1)
}
