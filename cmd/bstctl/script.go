package main

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/arrTree"
	"github.com/g-m-twostay/go-bst/internal/script"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"
)

var errSizeBits = errors.New("size bits must be 8, 16, 32 or 64")

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "execute a command script against a fresh map",
	ArgsUsage: "<file | ->",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "numeric",
			Usage:   "parse keys as 64-bit integers instead of strings",
			EnvVars: []string{"BSTCTL_NUMERIC"},
		},
		&cli.BoolFlag{
			Name:    "arena",
			Usage:   "use the slice backed tree",
			EnvVars: []string{"BSTCTL_ARENA"},
		},
		&cli.IntFlag{
			Name:    "size-bits",
			Usage:   "width of the subtree size counters",
			Value:   64,
			EnvVars: []string{"BSTCTL_SIZE_BITS"},
		},
	},
	Action: runScript,
}

func runScript(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need a script file, or %q for stdin", stdIOPath)
	}
	r, err := getFileOrStdin(path)
	if err != nil {
		return err
	}
	defer r.Close()

	arena, bits := cctx.Bool("arena"), cctx.Int("size-bits")
	slog.Debug("running script", "path", path, "numeric", cctx.Bool("numeric"), "arena", arena, "sizeBits", bits)
	if cctx.Bool("numeric") {
		m, err := newMap[int64](arena, bits)
		if err != nil {
			return err
		}
		return script.New(m, script.ParseInt, cctx.App.Writer, slog.Default()).Run(cctx.Context, r)
	}
	m, err := newMap[string](arena, bits)
	if err != nil {
		return err
	}
	return script.New(m, script.ParseString, cctx.App.Writer, slog.Default()).Run(cctx.Context, r)
}

func newMap[K cmp.Ordered](arena bool, bits int) (Trees.OrderedMap[K, string], error) {
	switch bits {
	case 8:
		return pick[K, uint8](arena), nil
	case 16:
		return pick[K, uint16](arena), nil
	case 32:
		return pick[K, uint32](arena), nil
	case 64:
		return pick[K, uint64](arena), nil
	}
	return nil, fmt.Errorf("%w, got %d", errSizeBits, bits)
}

func pick[K cmp.Ordered, S constraints.Unsigned](arena bool) Trees.OrderedMap[K, string] {
	if arena {
		return arrTree.New[K, string, S](0)
	}
	return Trees.New[K, string, S]()
}
