package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/script"
	"github.com/urfave/cli/v2"
)

const demoScript = `put 5 a
put 2 b
put 8 c
put 1 d
put 3 e
print
size
floor 4
ceiling 4
min
max
delete 5
contains 5
size
asc
empty`

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "show the basic operations on a small map",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	out := cctx.App.Writer
	e := script.New[int64](Trees.New[int64, string, uint](), script.ParseInt, out, slog.Default())
	sc := bufio.NewScanner(strings.NewReader(demoScript))
	for sc.Scan() {
		fmt.Fprintf(out, "> %s\n", sc.Text())
		if err := e.Exec(sc.Text()); err != nil {
			return err
		}
		if err := e.Flush(); err != nil {
			return err
		}
	}
	return nil
}
