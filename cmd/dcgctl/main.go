// Command dcgctl drives a dcg.Engine from a small line-oriented script,
// for manual exploration of the incremental computation graph.
//
// Usage:
//
//	dcgctl [flags] [script-file]
//
// With no script-file, dcgctl reads the script from stdin.
//
// Flags:
//
//	-ignore-nominal
//	    Force structural identity for every allocation (config.Config's
//	    IgnoreNominalUseStructural).
//	-check-well-formed
//	    Run wellformed.Check after every operation and abort the script on
//	    the first violation.
//
// Script grammar, one operation per line, blank lines and lines starting
// with # ignored:
//
//	cell NAME VALUE
//	thunk nominal|structural|eager NAME FN ARG
//	set NAME VALUE
//	force NAME
//	dump
//	counts
//
// FN names one of scriptval's built-in functions (identity, upper, lower,
// double, square, increment). NAME is the script's own bookkeeping key
// for the resulting handle, independent of the engine's own identity
// policy for that allocation.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yesoreyeram/dcgo/pkg/config"
	"github.com/yesoreyeram/dcgo/pkg/dcg"
	"github.com/yesoreyeram/dcgo/pkg/scriptval"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
	"github.com/yesoreyeram/dcgo/pkg/wellformed"
)

func main() {
	ignoreNominal := flag.Bool("ignore-nominal", false, "force structural identity for every allocation")
	checkWellFormed := flag.Bool("check-well-formed", false, "run a well-formedness check after every operation")
	flag.Parse()

	cfg := config.Default()
	cfg.IgnoreNominalUseStructural = *ignoreNominal
	cfg.CheckWellFormed = *checkWellFormed

	var in *os.File
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "dcgctl: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	r := newRunner(cfg)
	if err := r.run(in); err != nil {
		fmt.Fprintf(os.Stderr, "dcgctl: %v\n", err)
		os.Exit(1)
	}
}

// runner holds one engine instance and the script-level name-to-handle
// bindings a running script accumulates.
type runner struct {
	engine  *dcg.Engine
	cfg     *config.Config
	handles map[string]dcg.Handle
}

func newRunner(cfg *config.Config) *runner {
	return &runner{
		engine:  dcg.New(dcg.WithConfig(cfg)),
		cfg:     cfg,
		handles: make(map[string]dcg.Handle),
	}
}

func (r *runner) run(in *os.File) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.exec(line); err != nil {
			return fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}
	}
	return scanner.Err()
}

func (r *runner) exec(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "cell":
		return r.execCell(fields[1:])
	case "thunk":
		return r.execThunk(fields[1:])
	case "set":
		return r.execSet(fields[1:])
	case "force":
		return r.execForce(fields[1:])
	case "dump":
		return r.execDump()
	case "counts":
		return r.execCounts()
	default:
		return fmt.Errorf("unknown operation %q", fields[0])
	}
}

func (r *runner) execCell(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: cell NAME VALUE")
	}
	name, literal := args[0], args[1]
	h, err := r.engine.Cell(symbol.NameOfString(name), scriptval.ParseScalar(literal))
	if err != nil {
		return err
	}
	r.handles[name] = h
	fmt.Printf("cell %s allocated\n", name)
	return nil
}

func (r *runner) execThunk(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: thunk nominal|structural|eager NAME FN ARG")
	}
	mode, name, fnName, argLiteral := args[0], args[1], args[2], args[3]

	fn, err := scriptval.Func(fnName)
	if err != nil {
		return err
	}
	point := scriptval.FunctionPoint{Name: fnName}
	arg := scriptval.ParseScalar(argLiteral)

	var h dcg.Handle
	switch mode {
	case "nominal":
		h, err = r.engine.ThunkNominal(symbol.NameOfString(name), point, fn, arg)
	case "structural":
		h, err = r.engine.ThunkStructural(point, fn, arg)
	case "eager":
		h = r.engine.ThunkEager(fn, arg)
	default:
		return fmt.Errorf("thunk mode must be nominal, structural, or eager, got %q", mode)
	}
	if err != nil {
		return err
	}
	r.handles[name] = h
	fmt.Printf("thunk %s allocated (%s)\n", name, mode)
	return nil
}

func (r *runner) execSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set NAME VALUE")
	}
	name, literal := args[0], args[1]
	h, ok := r.handles[name]
	if !ok {
		return fmt.Errorf("no handle bound to %q", name)
	}
	if err := r.engine.Set(h, scriptval.ParseScalar(literal)); err != nil {
		return err
	}
	fmt.Printf("set %s\n", name)
	return nil
}

func (r *runner) execForce(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: force NAME")
	}
	name := args[0]
	h, ok := r.handles[name]
	if !ok {
		return fmt.Errorf("no handle bound to %q", name)
	}
	value, err := r.engine.Force(h)
	if err != nil {
		return err
	}
	fmt.Printf("force %s = %v\n", name, value)
	return nil
}

func (r *runner) execDump() error {
	entries := wellformed.Dump(r.engine.Store())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func (r *runner) execCounts() error {
	counts := r.engine.Counts()
	fmt.Printf("evaluations=%d change_propagate_invocations=%d dirty_observe_marks=%d dirty_alloc_marks=%d\n",
		counts.Evaluations, counts.ChangePropagateInvocations, counts.DirtyObserveMarks, counts.DirtyAllocMarks)
	return nil
}
