// Package script executes a line oriented command language against a
// Trees.OrderedMap with string values.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrCorrupt        = errors.New("tree is corrupt")
)

// None is printed for absent results.
const None = "<none>"

// KeyParser turns a script word into a key.
type KeyParser[K any] func(string) (K, error)

// ParseInt parses base 10 int64 keys.
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ParseString uses the word itself as the key.
func ParseString(s string) (string, error) {
	return s, nil
}

// Engine runs commands on one map and writes one line per result to out.
type Engine[K any] struct {
	m      Trees.OrderedMap[K, string]
	parse  KeyParser[K]
	out    *bufio.Writer
	logger *slog.Logger
	cmds   map[string]command[K]
}

func New[K any](m Trees.OrderedMap[K, string], parse KeyParser[K], out io.Writer, logger *slog.Logger) *Engine[K] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine[K]{m, parse, bufio.NewWriter(out), logger.With("component", "script"), commands[K]()}
}

// Run every line of r. Blank lines and lines starting with # are skipped.
// Execution stops at the first failing line or when ctx is done.
func (e *Engine[K]) Run(ctx context.Context, r io.Reader) error {
	defer e.out.Flush()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := e.Exec(line); err != nil {
			e.logger.Debug("command failed", "line", n, "command", line, "err", err)
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// Flush buffered output.
func (e *Engine[K]) Flush() error {
	return e.out.Flush()
}

type command[K any] struct {
	minArgs, maxArgs int //maxArgs<0 is unbounded
	run              func(e *Engine[K], args []string) error
}

func commands[K any]() map[string]command[K] {
	return map[string]command[K]{
		"put":       {2, -1, (*Engine[K]).put},
		"get":       {1, 1, (*Engine[K]).get},
		"contains":  {1, 1, (*Engine[K]).contains},
		"delete":    {1, 1, (*Engine[K]).delete},
		"min":       {0, 0, func(e *Engine[K], _ []string) error { return e.pair(e.m.Min()) }},
		"max":       {0, 0, func(e *Engine[K], _ []string) error { return e.pair(e.m.Max()) }},
		"deletemin": {0, 0, func(e *Engine[K], _ []string) error { return e.pair(e.m.DeleteMin()) }},
		"deletemax": {0, 0, func(e *Engine[K], _ []string) error { return e.pair(e.m.DeleteMax()) }},
		"floor":     {1, 1, (*Engine[K]).floor},
		"ceiling":   {1, 1, (*Engine[K]).ceiling},
		"rank":      {1, 1, (*Engine[K]).rank},
		"select":    {1, 1, (*Engine[K]).selectAt},
		"count":     {2, 2, (*Engine[K]).count},
		"range":     {2, 2, (*Engine[K]).rangeOf},
		"size":      {0, 0, func(e *Engine[K], _ []string) error { return e.println(e.m.Size()) }},
		"empty":     {0, 0, func(e *Engine[K], _ []string) error { return e.println(e.m.IsEmpty()) }},
		"height":    {0, 0, func(e *Engine[K], _ []string) error { return e.println(e.m.Height()) }},
		"keys":      {0, 0, (*Engine[K]).keys},
		"asc":       {0, 0, func(e *Engine[K], _ []string) error { return e.drain(true) }},
		"desc":      {0, 0, func(e *Engine[K], _ []string) error { return e.drain(false) }},
		"print":     {0, 0, func(e *Engine[K], _ []string) error { return e.m.Print(e.out) }},
		"check":     {0, 0, (*Engine[K]).check},
		"clear":     {0, 0, func(e *Engine[K], _ []string) error { e.m.Clear(); return e.println("ok") }},
	}
}

// Exec a single command line.
func (e *Engine[K]) Exec(line string) error {
	fs := strings.Fields(line)
	if len(fs) == 0 {
		return nil
	}
	name, args := strings.ToLower(fs[0]), fs[1:]
	c, ok := e.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, fs[0])
	}
	if len(args) < c.minArgs || c.maxArgs >= 0 && len(args) > c.maxArgs {
		return fmt.Errorf("%w: %s takes %s, got %d", ErrArity, name, arity(c.minArgs, c.maxArgs), len(args))
	}
	return c.run(e, args)
}

func arity(lo, hi int) string {
	switch {
	case hi < 0:
		return fmt.Sprintf("at least %d", lo)
	case lo == hi:
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}

func (e *Engine[K]) key(s string) (K, error) {
	k, err := e.parse(s)
	if err != nil {
		return k, fmt.Errorf("bad key %q: %w", s, err)
	}
	return k, nil
}

func (e *Engine[K]) println(a ...any) error {
	_, err := fmt.Fprintln(e.out, a...)
	return err
}

func (e *Engine[K]) pair(k K, v string, ok bool) error {
	if !ok {
		return e.println(None)
	}
	return e.println(k, v)
}

func (e *Engine[K]) put(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	if e.m.Insert(k, strings.Join(args[1:], " ")) {
		return e.println("inserted")
	}
	return e.println("updated")
}

func (e *Engine[K]) get(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	if v, ok := e.m.Get(k); ok {
		return e.println(v)
	}
	return e.println(None)
}

func (e *Engine[K]) contains(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	return e.println(e.m.Contains(k))
}

func (e *Engine[K]) delete(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	if e.m.Delete(k) {
		return e.println("deleted")
	}
	return e.println(None)
}

func (e *Engine[K]) floor(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	if f, ok := e.m.Floor(k); ok {
		return e.println(f)
	}
	return e.println(None)
}

func (e *Engine[K]) ceiling(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	if c, ok := e.m.Ceiling(k); ok {
		return e.println(c)
	}
	return e.println(None)
}

func (e *Engine[K]) rank(args []string) error {
	k, err := e.key(args[0])
	if err != nil {
		return err
	}
	return e.println(e.m.Rank(k))
}

func (e *Engine[K]) selectAt(args []string) error {
	i, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return fmt.Errorf("bad index %q: %w", args[0], err)
	}
	return e.pair(e.m.Select(uint(i)))
}

func (e *Engine[K]) bounds(args []string) (lo, hi K, err error) {
	if lo, err = e.key(args[0]); err != nil {
		return
	}
	hi, err = e.key(args[1])
	return
}

func (e *Engine[K]) count(args []string) error {
	lo, hi, err := e.bounds(args)
	if err != nil {
		return err
	}
	return e.println(e.m.Count(lo, hi))
}

func (e *Engine[K]) rangeOf(args []string) error {
	lo, hi, err := e.bounds(args)
	if err != nil {
		return err
	}
	for k, v := range e.m.Range(lo, hi) {
		if err := e.println(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine[K]) keys([]string) error {
	ks := make([]string, 0, e.m.Size())
	for k := range e.m.All() {
		ks = append(ks, fmt.Sprint(k))
	}
	return e.println(strings.Join(ks, " "))
}

func (e *Engine[K]) drain(ascending bool) error {
	n := 0
	for k, v := range Trees.Drain(e.m, ascending) {
		if err := e.println(k, v); err != nil {
			return err
		}
		n++
	}
	e.logger.Debug("drained", "ascending", ascending, "pairs", n)
	return nil
}

func (e *Engine[K]) check([]string) error {
	if e.m.Corrupt() {
		return ErrCorrupt
	}
	return e.println("ok")
}
